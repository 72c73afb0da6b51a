package result

// StepAFunc produces the first value of a Pipeline.
type StepAFunc[A any] func() (A, error)

// StepFunc converts the output of one stage into the input of the next.
type StepFunc[In, Out any] func(In) (Out, error)

// Pipeline runs three fallible stages in order. Each stage reports its
// failure as its own ErrorType.
type Pipeline[A, B, C any] struct {
	StepA StepAFunc[A]
	StepB StepFunc[A, B]
	StepC StepFunc[B, C]
}

// RunEarlyReturn runs the stages with an explicit check after each one.
// It is kept next to Run as the form Run replaces; both return the same Result.
func (p Pipeline[A, B, C]) RunEarlyReturn() Result[C] {
	a, err := p.StepA()
	if err != nil {
		return Error[C](ErrorStepA)
	}

	b, err := p.StepB(a)
	if err != nil {
		return Error[C](ErrorStepB)
	}

	c, err := p.StepC(b)
	if err != nil {
		return Error[C](ErrorStepC)
	}

	return Success(c)
}

// Run chains the stages with FlatMap.
func (p Pipeline[A, B, C]) Run() Result[C] {
	return FlatMap(
		FlatMap(
			Catch[A](ErrorStepA, p.StepA),
			p.StepB.catch(ErrorStepB),
		),
		p.StepC.catch(ErrorStepC),
	)
}

func (f StepFunc[In, Out]) catch(kind ErrorType) func(In) Result[Out] {
	return func(in In) Result[Out] {
		return Catch(kind, func() (Out, error) { return f(in) })
	}
}
