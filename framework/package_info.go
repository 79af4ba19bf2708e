// Package framework contains the low-level implementation of test harness infrastructure
// that can be reused for different kinds of tests.
//
// The general model is:
//
// 1. The component under test runs in-process and talks HTTP to a mock network layer
// (package mocknet), which answers with canned responses and records the bodies of write
// requests.
//
// 2. Tests drive the component through an accessible element tree (package screen), locating
// elements by label or role and waiting, with a bound, for asynchronous updates.
//
// 3. There is a general notion of a test context which is similar to Go's *testing.T,
// allowing pieces of test logic to be associated with a test identifier and to accumulate
// success/failure results.
//
// The domain-specific code that knows what is being tested is responsible for registering the
// mock routes, rendering the component, and providing a domain-specific test API on top of the
// test context.
package framework
