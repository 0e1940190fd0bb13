// Package strfmt formats strings from {…} placeholders and post-processes
// the result through a lazily evaluated pipeline of string operations.
//
// # Basic Usage
//
// Positional parameters, with an auto cursor for empty placeholders:
//
//	strfmt.IFormatL("{} {}!", "Hello", "world").String()   // "Hello world!"
//	strfmt.IFormatL("{1} {0}!", "Hello", "world").String() // "world Hello!"
//
// Named parameters, with defaults merged on compile:
//
//	f := strfmt.NewNamedFormatter("{welcome} {name}!", map[string]any{"welcome": "Hello", "name": "world"})
//	f.Compile(map[string]any{"name": "earth"}).String() // "Hello earth!"
//
// # Placeholder Syntax
//
// A token is the text between one pair of braces. Its key is digits or empty
// in indexed mode and a word in named mode. Forms are tried in this order:
//
//	{key}               value
//	{key:[pad]<|>|^N}   padded to N characters, left, right or centered
//	{key%pattern}       fmt.Sprintf(pattern, value...); slices are spread
//	{key->member}       zero-argument method, then exported field
//	{key#[src#]dst}     base conversion; dst is 2-36 or one of b o d x X
//	{key[sub]}          map or slice element
//	{@keyword}          call-site metadata: class, classLong, method,
//	                    methodLong, function, file, fileLong, dir, dirLong, line
//
// There is no escape for literal braces. A token that matches no form is
// kept verbatim and reported as a Diagnostic; formatting never fails.
//
// # Pipelines
//
// Compile returns a Builder. Step methods return new builders and nothing
// runs until the builder is unfolded:
//
//	out := strfmt.IFormatL("{}", "  hello world  ").
//		Strip().
//		UpperWords().
//		Replace("World", "Gopher").
//		String() // "Hello Gopher"
//
// Pipelines can also be declared in YAML, see Recipe.
package strfmt
