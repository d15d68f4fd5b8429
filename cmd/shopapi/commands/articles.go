package commands

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/merchkit-io/shopapi-client/internal/constants"
	"github.com/merchkit-io/shopapi-client/pkg/shopapi"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// NewArticlesCommand creates the articles command group.
func NewArticlesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "articles",
		Aliases: []string{"article"},
		Short:   "Manage blog articles",
		Long:    "List and manage blog articles, tags, and authors",
	}

	cmd.AddCommand(newArticlesListCommand())
	cmd.AddCommand(newArticlesGetCommand())
	cmd.AddCommand(newArticlesDeleteCommand())
	cmd.AddCommand(newArticlesTagsCommand())
	cmd.AddCommand(newArticlesAuthorsCommand())

	return cmd
}

func newArticlesListCommand() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "list BLOG_ID",
		Short: "List articles of a blog",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			blogID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid blog id %q: %w", args[0], err)
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			params := shopapi.NewQueryParams().WithLimit(limit)

			articles, _, err := client.Articles().List(context.Background(), blogID, params)
			if err != nil {
				return fmt.Errorf("failed to list articles: %w", err)
			}

			output := viper.GetString("output")
			switch output {
			case OutputFormatJSON:
				return outputJSON(articles)
			case OutputFormatYAML:
				return outputYAML(articles)
			default:
				return outputArticlesTable(articles)
			}
		},
	}

	cmd.Flags().IntVar(&limit, "limit", constants.DefaultPageSize, "results per page")

	return cmd
}

func outputArticlesTable(articles []shopapi.Article) error {
	table := tablewriter.NewWriter(os.Stdout)
	table.Header("ID", "Title", "Author", "Tags", "Created")

	for _, article := range articles {
		_ = table.Append(
			strconv.FormatInt(article.ID, 10),
			article.Title,
			article.Author,
			article.Tags,
			formatTime(article.CreatedAt),
		)
	}

	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}

func newArticlesGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get BLOG_ID ARTICLE_ID",
		Short: "Get an article",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			blogID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid blog id %q: %w", args[0], err)
			}

			id, err := strconv.ParseInt(args[1], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid article id %q: %w", args[1], err)
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			article, err := client.Articles().Get(context.Background(), blogID, id)
			if err != nil {
				return fmt.Errorf("failed to get article: %w", err)
			}

			output := viper.GetString("output")
			switch output {
			case OutputFormatYAML:
				return outputYAML(article)
			default:
				return outputJSON(article)
			}
		},
	}
}

func newArticlesDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete BLOG_ID ARTICLE_ID",
		Short: "Delete an article",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			blogID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid blog id %q: %w", args[0], err)
			}

			id, err := strconv.ParseInt(args[1], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid article id %q: %w", args[1], err)
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			if _, err := client.Articles().Delete(context.Background(), blogID, id); err != nil {
				return fmt.Errorf("failed to delete article: %w", err)
			}

			fmt.Printf("Article %d deleted\n", id)

			return nil
		},
	}
}

func newArticlesTagsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "tags",
		Short: "List all article tags",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			tags, err := client.Articles().Tags(context.Background())
			if err != nil {
				return fmt.Errorf("failed to list article tags: %w", err)
			}

			return outputStringList(tags)
		},
	}
}

func newArticlesAuthorsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "authors",
		Short: "List all article authors",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			authors, err := client.Articles().Authors(context.Background())
			if err != nil {
				return fmt.Errorf("failed to list article authors: %w", err)
			}

			return outputStringList(authors)
		},
	}
}

// outputStringList prints a bare string listing in the selected format.
func outputStringList(items []string) error {
	output := viper.GetString("output")
	switch output {
	case OutputFormatJSON:
		return outputJSON(items)
	case OutputFormatYAML:
		return outputYAML(items)
	default:
		for _, item := range items {
			fmt.Println(item)
		}

		return nil
	}
}
