package panicerr

// Recover runs f in a new goroutine wrapped in defer logic that turns any
// panic, runtime.Goexit, or Exit call into a non-nil error return.
func Recover(name string, f func() error) error {
	errch := make(chan error, 1)
	go func() {
		defer close(errch)
		defer recoverGoexit(name, errch)
		defer recoverPanic(name, errch)
		errch <- f()
	}()
	return <-errch
}
