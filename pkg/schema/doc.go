// Package schema derives widget field lists from OpenAPI 3 component
// schemas, so a repeatable group can mirror the item shape of an array
// property.
package schema
