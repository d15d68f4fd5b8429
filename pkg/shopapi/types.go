package shopapi

import (
	"time"
)

// Meta carries rate-limit and pagination information derived from response
// headers. It accompanies every successful call.
type Meta struct {
	RateLimit *RateLimit `json:"rate_limit,omitempty" yaml:"rate_limit,omitempty"`
	Page      *Page      `json:"page,omitempty"       yaml:"page,omitempty"`
}

// RateLimit is the parsed call-limit header ("used/total").
type RateLimit struct {
	Used  int `json:"used"  yaml:"used"`
	Total int `json:"total" yaml:"total"`
}

// Page holds the pagination URLs from the Link response header. Empty
// strings mean the relation was absent.
type Page struct {
	Next     string `json:"next,omitempty"     yaml:"next,omitempty"`
	Previous string `json:"previous,omitempty" yaml:"previous,omitempty"`
}

// Result is the outcome of a successful pipeline invocation. Value is nil
// for calls that expect no envelope (delete-style, meta-only success).
type Result struct {
	Value any
	Meta  Meta
}

// Logger is the minimal structured logging interface the client emits
// debug information through. Binaries typically back it with zerolog.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Resource structs double as response targets and request payloads, so
// every field is omitempty and timestamps are pointers: zero fields stay
// off the wire on create/update.

// Shop describes the shop the session is bound to.
type Shop struct {
	ID        int64      `json:"id,omitempty"         yaml:"id,omitempty"`
	Name      string     `json:"name,omitempty"       yaml:"name,omitempty"`
	Domain    string     `json:"domain,omitempty"     yaml:"domain,omitempty"`
	Email     string     `json:"email,omitempty"      yaml:"email,omitempty"`
	Currency  string     `json:"currency,omitempty"   yaml:"currency,omitempty"`
	PlanName  string     `json:"plan_name,omitempty"  yaml:"plan_name,omitempty"`
	CreatedAt *time.Time `json:"created_at,omitempty" yaml:"created_at,omitempty"`
}

// Customer is a shop customer record.
type Customer struct {
	ID          int64      `json:"id,omitempty"           yaml:"id,omitempty"`
	Email       string     `json:"email,omitempty"        yaml:"email,omitempty"`
	FirstName   string     `json:"first_name,omitempty"   yaml:"first_name,omitempty"`
	LastName    string     `json:"last_name,omitempty"    yaml:"last_name,omitempty"`
	Tags        string     `json:"tags,omitempty"         yaml:"tags,omitempty"`
	OrdersCount int64      `json:"orders_count,omitempty" yaml:"orders_count,omitempty"`
	TotalSpent  string     `json:"total_spent,omitempty"  yaml:"total_spent,omitempty"`
	CreatedAt   *time.Time `json:"created_at,omitempty"   yaml:"created_at,omitempty"`
	UpdatedAt   *time.Time `json:"updated_at,omitempty"   yaml:"updated_at,omitempty"`
}

// Order is a shop order with its line items.
type Order struct {
	ID                int64      `json:"id,omitempty"                 yaml:"id,omitempty"`
	Name              string     `json:"name,omitempty"               yaml:"name,omitempty"`
	Email             string     `json:"email,omitempty"              yaml:"email,omitempty"`
	Currency          string     `json:"currency,omitempty"           yaml:"currency,omitempty"`
	TotalPrice        string     `json:"total_price,omitempty"        yaml:"total_price,omitempty"`
	FinancialStatus   string     `json:"financial_status,omitempty"   yaml:"financial_status,omitempty"`
	FulfillmentStatus string     `json:"fulfillment_status,omitempty" yaml:"fulfillment_status,omitempty"`
	LineItems         []LineItem `json:"line_items,omitempty"         yaml:"line_items,omitempty"`
	CreatedAt         *time.Time `json:"created_at,omitempty"         yaml:"created_at,omitempty"`
	CancelledAt       *time.Time `json:"cancelled_at,omitempty"       yaml:"cancelled_at,omitempty"`
}

// LineItem is a single purchasable entry on an order.
type LineItem struct {
	ID       int64  `json:"id,omitempty"       yaml:"id,omitempty"`
	Title    string `json:"title,omitempty"    yaml:"title,omitempty"`
	Quantity int    `json:"quantity,omitempty" yaml:"quantity,omitempty"`
	Price    string `json:"price,omitempty"    yaml:"price,omitempty"`
	SKU      string `json:"sku,omitempty"      yaml:"sku,omitempty"`
}

// Article is a blog article.
type Article struct {
	ID        int64      `json:"id,omitempty"         yaml:"id,omitempty"`
	BlogID    int64      `json:"blog_id,omitempty"    yaml:"blog_id,omitempty"`
	Title     string     `json:"title,omitempty"      yaml:"title,omitempty"`
	Author    string     `json:"author,omitempty"     yaml:"author,omitempty"`
	Tags      string     `json:"tags,omitempty"       yaml:"tags,omitempty"`
	BodyHTML  string     `json:"body_html,omitempty"  yaml:"body_html,omitempty"`
	CreatedAt *time.Time `json:"created_at,omitempty" yaml:"created_at,omitempty"`
}

// PriceRule is a discount rule.
type PriceRule struct {
	ID         int64      `json:"id,omitempty"          yaml:"id,omitempty"`
	Title      string     `json:"title,omitempty"       yaml:"title,omitempty"`
	ValueType  string     `json:"value_type,omitempty"  yaml:"value_type,omitempty"`
	Value      string     `json:"value,omitempty"       yaml:"value,omitempty"`
	TargetType string     `json:"target_type,omitempty" yaml:"target_type,omitempty"`
	StartsAt   *time.Time `json:"starts_at,omitempty"   yaml:"starts_at,omitempty"`
	EndsAt     *time.Time `json:"ends_at,omitempty"     yaml:"ends_at,omitempty"`
}

// Asset is a theme asset addressed by key within a theme.
type Asset struct {
	Key         string     `json:"key,omitempty"          yaml:"key,omitempty"`
	ThemeID     int64      `json:"theme_id,omitempty"     yaml:"theme_id,omitempty"`
	ContentType string     `json:"content_type,omitempty" yaml:"content_type,omitempty"`
	Value       string     `json:"value,omitempty"        yaml:"value,omitempty"`
	PublicURL   string     `json:"public_url,omitempty"   yaml:"public_url,omitempty"`
	UpdatedAt   *time.Time `json:"updated_at,omitempty"   yaml:"updated_at,omitempty"`
}

// Event is an audit-style platform event describing something that
// happened to a resource.
type Event struct {
	ID          int64      `json:"id,omitempty"           yaml:"id,omitempty"`
	SubjectID   int64      `json:"subject_id,omitempty"   yaml:"subject_id,omitempty"`
	SubjectType string     `json:"subject_type,omitempty" yaml:"subject_type,omitempty"`
	Verb        string     `json:"verb,omitempty"         yaml:"verb,omitempty"`
	Message     string     `json:"message,omitempty"      yaml:"message,omitempty"`
	CreatedAt   *time.Time `json:"created_at,omitempty"   yaml:"created_at,omitempty"`
}
