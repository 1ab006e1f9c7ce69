// Package catalog supplies the products a shopper can put in the cart.
//
// Two sources exist:
//   - Static: the fixed five-product list, available immediately
//   - Remote: a JSON document fetched once, from an http(s) URL or a local file
//
// Remote payloads pass through a CUE schema before they become Products.
// A payload that is not a JSON array is a load failure; entries inside the
// array that violate the schema are dropped and reported individually.
// Product names are NFC-normalized at this boundary so that names compare
// the same regardless of how the source encoded accents.
package catalog
