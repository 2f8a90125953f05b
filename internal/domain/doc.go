// Package domain contains shared domain types used across entity sub-packages.
// Entity-specific models live in sub-packages (domain/article). This root
// package holds sentinel errors, the ValidationError type, the Result envelope
// returned by persistence pipelines, and the Locale descriptor.
package domain
