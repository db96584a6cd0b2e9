// Package magetasks provides organized build tasks for the verdict module.
//
// This package contains the build, test, lint, and quality tasks used by
// the Magefile. Tasks are organized into logical namespaces for better
// discoverability.
package magetasks
