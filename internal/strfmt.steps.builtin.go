package internal

// RegisterBuiltinSteps registers every built-in pipeline step with r
func RegisterBuiltinSteps(r *StepRegistry) {
	registerReplaceSteps(r)
	registerTrimSteps(r)
	registerCaseSteps(r)
	registerLayoutSteps(r)
	registerAffixSteps(r)

	r.MustRegister(&Step{
		Name:    StepTransform,
		MinArgs: 1,
		MaxArgs: -1,
		Apply: func(w *Worker, args []any) error {
			fn, ok := asTransformFunc(args[0])
			if !ok {
				return NewStepArgError(StepTransform, ArgIndexFirst, ArgTypeFunc, args[0])
			}
			w.Transform(fn, args[1:]...)
			return nil
		},
	})
}

func registerReplaceSteps(r *StepRegistry) {
	replace := func(name string, literal func(w *Worker, from, to string), computed func(w *Worker, from string, fn ReplaceFunc)) *Step {
		return &Step{
			Name:    name,
			MinArgs: 2,
			MaxArgs: 2,
			Apply: func(w *Worker, args []any) error {
				from, err := argString(name, args, ArgIndexFirst, "")
				if err != nil {
					return err
				}
				if fn, ok := asReplaceFunc(args[ArgIndexSecond]); ok {
					computed(w, from, fn)
					return nil
				}
				to, ok := args[ArgIndexSecond].(string)
				if !ok {
					return NewStepArgError(name, ArgIndexSecond, ArgTypeReplace, args[ArgIndexSecond])
				}
				literal(w, from, to)
				return nil
			},
		}
	}
	r.MustRegister(replace(StepReplace, (*Worker).Replace, (*Worker).ReplaceFunc))
	r.MustRegister(replace(StepIReplace, (*Worker).IReplace, (*Worker).IReplaceFunc))

	r.MustRegister(&Step{
		Name:    StepRegexReplace,
		MinArgs: 2,
		MaxArgs: 3,
		Apply: func(w *Worker, args []any) error {
			re, err := asRegexp(StepRegexReplace, args[ArgIndexFirst])
			if err != nil {
				return err
			}
			limit, err := argInt(StepRegexReplace, args, ArgIndexThird, DefaultRegexLimit)
			if err != nil {
				return err
			}
			if fn, ok := asRegexReplaceFunc(args[ArgIndexSecond]); ok {
				w.RegexReplaceFunc(re, fn, limit)
				return nil
			}
			repl, ok := args[ArgIndexSecond].(string)
			if !ok {
				return NewStepArgError(StepRegexReplace, ArgIndexSecond, ArgTypeRegexRep, args[ArgIndexSecond])
			}
			w.RegexReplace(re, repl, limit)
			return nil
		},
	})
}

func registerTrimSteps(r *StepRegistry) {
	trim := func(name string, fn func(w *Worker, chars string)) *Step {
		return &Step{
			Name:    name,
			MinArgs: 0,
			MaxArgs: 1,
			Apply: func(w *Worker, args []any) error {
				chars, err := argString(name, args, ArgIndexFirst, DefaultStripChars)
				if err != nil {
					return err
				}
				fn(w, chars)
				return nil
			},
		}
	}
	r.MustRegister(trim(StepStrip, (*Worker).Strip))
	r.MustRegister(trim(StepLStrip, (*Worker).LStrip))
	r.MustRegister(trim(StepRStrip, (*Worker).RStrip))

	r.MustRegister(&Step{
		Name:    StepSquashWhitechars,
		MinArgs: 0,
		MaxArgs: 0,
		Apply: func(w *Worker, _ []any) error {
			w.SquashWhitechars()
			return nil
		},
	})
}

func registerCaseSteps(r *StepRegistry) {
	// encoded builds a step whose only optional argument is an encoding name
	encoded := func(name string, fn func(w *Worker, enc string) error) *Step {
		return &Step{
			Name:    name,
			MinArgs: 0,
			MaxArgs: 1,
			Apply: func(w *Worker, args []any) error {
				enc, err := argString(name, args, ArgIndexFirst, "")
				if err != nil {
					return err
				}
				return fn(w, enc)
			},
		}
	}
	r.MustRegister(encoded(StepUpper, (*Worker).Upper))
	r.MustRegister(encoded(StepLower, (*Worker).Lower))
	r.MustRegister(encoded(StepUpperFirst, (*Worker).UpperFirst))
	r.MustRegister(encoded(StepLowerFirst, (*Worker).LowerFirst))
	r.MustRegister(encoded(StepReverse, (*Worker).Reverse))

	r.MustRegister(&Step{
		Name:    StepUpperWords,
		MinArgs: 0,
		MaxArgs: 1,
		Apply: func(w *Worker, args []any) error {
			delims, err := argString(StepUpperWords, args, ArgIndexFirst, DefaultWordDelimiters)
			if err != nil {
				return err
			}
			w.UpperWords(delims)
			return nil
		},
	})
}

func registerLayoutSteps(r *StepRegistry) {
	r.MustRegister(&Step{
		Name:    StepWordWrap,
		MinArgs: 0,
		MaxArgs: 3,
		Apply: func(w *Worker, args []any) error {
			width, err := argInt(StepWordWrap, args, ArgIndexFirst, DefaultWrapWidth)
			if err != nil {
				return err
			}
			brk, err := argString(StepWordWrap, args, ArgIndexSecond, DefaultWrapBreak)
			if err != nil {
				return err
			}
			cut, err := argBool(StepWordWrap, args, ArgIndexThird, false)
			if err != nil {
				return err
			}
			return w.WordWrap(width, brk, cut)
		},
	})

	r.MustRegister(&Step{
		Name:    StepSubstr,
		MinArgs: 1,
		MaxArgs: 3,
		Apply: func(w *Worker, args []any) error {
			start, err := argInt(StepSubstr, args, ArgIndexFirst, 0)
			if err != nil {
				return err
			}
			hasLength := !optional(args, ArgIndexSecond)
			length, err := argInt(StepSubstr, args, ArgIndexSecond, 0)
			if err != nil {
				return err
			}
			enc, err := argString(StepSubstr, args, ArgIndexThird, "")
			if err != nil {
				return err
			}
			return w.Substr(start, length, hasLength, enc)
		},
	})

	r.MustRegister(&Step{
		Name:    StepRepeat,
		MinArgs: 1,
		MaxArgs: 1,
		Apply: func(w *Worker, args []any) error {
			count, err := argInt(StepRepeat, args, ArgIndexFirst, 0)
			if err != nil {
				return err
			}
			return w.Repeat(count)
		},
	})

	eol := func(name string, fn func(w *Worker)) *Step {
		return &Step{
			Name: name,
			Apply: func(w *Worker, _ []any) error {
				fn(w)
				return nil
			},
		}
	}
	r.MustRegister(eol(StepEOL, (*Worker).EOL))
	r.MustRegister(eol(StepEOLRN, (*Worker).EOLRN))
	r.MustRegister(eol(StepEOLN, (*Worker).EOLN))
}

func registerAffixSteps(r *StepRegistry) {
	plain := func(name string, fn func(w *Worker, s string)) *Step {
		return &Step{
			Name:    name,
			MinArgs: 1,
			MaxArgs: 1,
			Apply: func(w *Worker, args []any) error {
				s, err := argString(name, args, ArgIndexFirst, "")
				if err != nil {
					return err
				}
				fn(w, s)
				return nil
			},
		}
	}
	r.MustRegister(plain(StepPrefix, (*Worker).Prefix))
	r.MustRegister(plain(StepSuffix, (*Worker).Suffix))
	r.MustRegister(plain(StepSurround, (*Worker).Surround))

	ensure := func(name string, fn func(w *Worker, sub, enc string) error) *Step {
		return &Step{
			Name:    name,
			MinArgs: 1,
			MaxArgs: 2,
			Apply: func(w *Worker, args []any) error {
				sub, err := argString(name, args, ArgIndexFirst, "")
				if err != nil {
					return err
				}
				enc, err := argString(name, args, ArgIndexSecond, "")
				if err != nil {
					return err
				}
				return fn(w, sub, enc)
			},
		}
	}
	r.MustRegister(ensure(StepEnsurePrefix, (*Worker).EnsurePrefix))
	r.MustRegister(ensure(StepEnsureSuffix, (*Worker).EnsureSuffix))

	r.MustRegister(&Step{
		Name:    StepInsert,
		MinArgs: 2,
		MaxArgs: 3,
		Apply: func(w *Worker, args []any) error {
			sub, err := argString(StepInsert, args, ArgIndexFirst, "")
			if err != nil {
				return err
			}
			idx, err := argInt(StepInsert, args, ArgIndexSecond, 0)
			if err != nil {
				return err
			}
			enc, err := argString(StepInsert, args, ArgIndexThird, "")
			if err != nil {
				return err
			}
			return w.Insert(sub, idx, enc)
		},
	})
}
