// Package utils holds small helpers shared by the indexers that do not belong
// to a single domain package.
package utils
