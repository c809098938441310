// Package domain defines the fixed-size key and signature types, the error
// kinds and the service/store contracts shared across sigcore.
// It contains plain types and interfaces only.
package domain
