// Package platforms holds the per-platform adapter configurations. Each
// file describes one e-learning platform and registers it at import time;
// importing this package for side effects makes every platform available
// through the adapter registry.
//
// Configs are pure data. When a platform redesigns its pages, the fix is a
// locator update here, not an engine change.
package platforms
