// Package types defines the catalog and annotation entity types, the Catalog
// and Annotations interfaces, configuration, and the standard errors shared by
// every lamp package.
package types
