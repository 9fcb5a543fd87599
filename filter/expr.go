package filter

import (
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/moviatask/moviactl/movia"
)

// CompiledFilter is an executable boolean expression over a movie.
type CompiledFilter struct {
	expression string
	program    *vm.Program
}

// CompilerOption configures a Compiler
type CompilerOption func(*Compiler)

// WithCache enables compilation caching with the specified size
func WithCache(size int) CompilerOption {
	return func(c *Compiler) {
		if size > 0 {
			c.cache = newLRUCache(size)
		}
	}
}

// Compiler compiles expr expressions into executable movie filters
type Compiler struct {
	helperFuncs map[string]any
	cache       *lruCache
}

// NewCompiler creates a new expr-based filter compiler
func NewCompiler(opts ...CompilerOption) *Compiler {
	c := &Compiler{helperFuncs: helperFunctions()}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Compile compiles an expression into an executable filter
func (c *Compiler) Compile(expression string) (*CompiledFilter, error) {
	expression = strings.TrimSpace(expression)
	if expression == "" {
		return nil, &CompilationError{
			Expression: expression,
			Reason:     "empty expression",
		}
	}

	if c.cache != nil {
		if cached, ok := c.cache.Get(expression); ok {
			return cached, nil
		}
	}

	program, err := expr.Compile(expression,
		expr.Env(c.helperFuncs),
		expr.AllowUndefinedVariables(), // Allow movie properties
		expr.AsBool(),                  // Ensure boolean result
	)
	if err != nil {
		return nil, &CompilationError{
			Expression: expression,
			Reason:     "failed to compile expression",
			Err:        err,
		}
	}

	compiled := &CompiledFilter{
		expression: expression,
		program:    program,
	}

	if c.cache != nil {
		c.cache.Put(expression, compiled)
	}
	return compiled, nil
}

// Clear removes all cached filters
func (c *Compiler) Clear() {
	if c.cache != nil {
		c.cache.Clear()
	}
}

// Size returns the number of cached filters
func (c *Compiler) Size() int {
	if c.cache != nil {
		return c.cache.Size()
	}
	return 0
}

// Evaluate evaluates the filter against a movie. Expressions that fail
// at runtime exclude the movie rather than aborting the whole pass.
func (f *CompiledFilter) Evaluate(movie movia.Movie) bool {
	result, err := expr.Run(f.program, runtimeEnvironment(movie))
	if err != nil {
		return false
	}
	// AsBool() during compilation guarantees the assertion
	return result.(bool)
}

// Expression returns the original expression
func (f *CompiledFilter) Expression() string {
	return f.expression
}

// Apply returns the movies matching the filter.
func (f *CompiledFilter) Apply(movies []movia.Movie) []movia.Movie {
	matched := make([]movia.Movie, 0, len(movies))
	for _, m := range movies {
		if f.Evaluate(m) {
			matched = append(matched, m)
		}
	}
	return matched
}

// helperFunctions creates the static helpers available at compile time
func helperFunctions() map[string]any {
	funcs := make(map[string]any, 8)
	addHelperFunctions(funcs)
	return funcs
}

// addHelperFunctions adds all helper functions to the provided map
func addHelperFunctions(env map[string]any) {
	env["contains"] = func(str, substr string) bool {
		return strings.Contains(strings.ToLower(str), strings.ToLower(substr))
	}
	env["startsWith"] = func(str, prefix string) bool {
		return strings.HasPrefix(strings.ToLower(str), strings.ToLower(prefix))
	}
	env["endsWith"] = func(str, suffix string) bool {
		return strings.HasSuffix(strings.ToLower(str), strings.ToLower(suffix))
	}
	env["lower"] = strings.ToLower
	env["upper"] = strings.ToUpper
}

// runtimeEnvironment builds the evaluation environment for one movie
func runtimeEnvironment(movie movia.Movie) map[string]any {
	env := make(map[string]any, 16)
	addHelperFunctions(env)

	env["Movie"] = movie
	env["Title"] = movie.Title
	env["Year"] = movie.Year
	env["Rating"] = movie.Rating
	env["Category"] = movie.Category
	env["Actors"] = movie.Actors

	env["hasActor"] = func(name string) bool {
		for _, a := range movie.Actors {
			if strings.EqualFold(a, name) || strings.Contains(strings.ToLower(a), strings.ToLower(name)) {
				return true
			}
		}
		return false
	}
	env["inCategory"] = func(category string) bool {
		return strings.EqualFold(movie.Category, category)
	}
	env["ratingAtLeast"] = func(min float64) bool {
		return movie.Rating >= min
	}

	return env
}
