// Package shopclient provides the primary entry point for constructing a
// shop admin API client that implements the shopapi.Client interface.
//
// It layers session validation and HTTP transport on top of the resource
// interfaces and types defined in the shopapi package. Most applications
// should import shopclient to build a client, then use the returned
// shopapi.Client to access resource-specific clients, for example
// Customers(), Orders(), Articles(), etc.
//
// Quick start
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/merchkit-io/shopapi-client/pkg/shopapi"
//	  "github.com/merchkit-io/shopapi-client/pkg/shopclient"
//	)
//
//	func example() {
//	  ctx := context.Background()
//
//	  // With an OAuth access token:
//	  cli, err := shopclient.NewWithToken("acme.myshopplatform.com", "shpat_...")
//	  if err != nil { log.Fatal(err) }
//
//	  // Or with private-app basic auth credentials:
//	  cli, err = shopclient.New(&shopapi.Config{
//	    Store:    "acme.myshopplatform.com",
//	    APIKey:   "api-key",
//	    Password: "api-password",
//	  })
//	  if err != nil { log.Fatal(err) }
//
//	  // Use resource clients via the shopapi.Client interface
//	  customers, _, err := cli.Customers().List(ctx, shopapi.NewQueryParams().WithLimit(10))
//	  if err != nil { log.Fatal(err) }
//	  _ = customers
//	}
//
// # Helpers
//
// The package also provides convenience constructors NewWithToken and
// NewWithPassword that wrap New with the appropriate configuration.
package shopclient
