// Package shopapi provides types, interfaces, and helpers for working with
// the shop platform's JSON admin API.
//
// # Overview
//
// The shopapi package defines the domain types (e.g., Customer, Order,
// Article, PriceRule, Asset) and the interfaces for resource-oriented
// clients (e.g., CustomersClient, OrdersClient). A concrete implementation
// is provided by the shopclient package, which wires session construction,
// transport, authentication, and the response pipeline. Most consumers
// should import shopclient to construct a client and then interact with
// the resource client interfaces exposed here.
//
// Getting a client
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
//	  cli, err := shopclient.NewWithToken("acme.myshopplatform.com", "shpat-token")
//	  if err != nil { log.Fatal(err) }
//
//	  customers, meta, err := cli.Customers().List(ctx, shopapi.NewQueryParams().WithLimit(50))
//	  if err != nil { log.Fatal(err) }
//	  _, _ = customers, meta
//	}
//
// # Queries and pagination
//
// Use QueryParams to express common list options (limit, since_id, fields,
// created_at bounds). List calls return a Meta value holding the parsed
// call-limit budget and the Link-header pagination URLs; PageIterator and
// FetchAllPages walk cursor-paginated listings:
//
//	it := shopapi.NewPageIterator(ctx, cli.Customers().List, shopapi.NewQueryParams().WithLimit(250))
//	for it.HasNext() {
//	  customer, err := it.Next()
//	  ...
//	}
//
// # Errors
//
// API failures are classified by status into *APIError values carrying a
// Kind, field errors (422), and the Retry-After budget (429). Shape
// mismatches on 2xx responses surface as *DecodeError and transport
// failures as *NetworkError. The IsNotFound, IsRateLimited, and related
// helpers match through wrapped errors. The core never retries or logs;
// recovery policy belongs to the caller.
package shopapi
