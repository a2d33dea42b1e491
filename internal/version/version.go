// Package version holds the rmux release version.
package version

// Version is the current rmux release version.
const Version = "0.1.0"
