package domain

// TestUnit is one independently runnable generated test: a unique class and
// method name for traceability plus the bound procedure. Any external runner
// able to invoke a func() error can consume it.
type TestUnit struct {
	ClassName  string
	MethodName string
	Input      ResolvedInput
	Run        func() error
}
