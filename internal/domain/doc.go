// Package domain contains the core model for heman.
//
// The domain is transport- and persistence-agnostic: it does not depend on CSV parsing,
// YAML, net/http, or the filesystem. Infra/adapters map into/from these types.
package domain
