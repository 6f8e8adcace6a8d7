// Package testutil holds helpers shared by tests that drive the whole
// application: temporary input trees and a run harness capturing output
// and logs.
package testutil
