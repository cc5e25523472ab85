// Package models defines the storefront client's data types: the
// self-asserted user session, catalog products as served by the remote
// product API, and the tab/subcategory layout used to browse them.
package models
