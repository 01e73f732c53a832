// Package async provides the small future primitive the chain executor runs
// chains on: start work with Go, collect with Await or WaitAll, and give up
// early on context cancellation without force-terminating the work.
package async
