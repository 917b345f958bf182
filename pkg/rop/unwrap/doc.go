// Package unwrap extracts the value from a success/failure or present/absent
// container in one expression, taking a fallback on the other branch.
//
// Five call shapes are provided, each checked by the compiler:
//
//	unwrap.Result(c, fb)          failure: print the error, return fb()
//	unwrap.ResultFunc(c, fb)      failure: return fb(err), print nothing
//	unwrap.OrElse(c, fb)          either shape: absent -> fb(), failure -> print, fb()
//	unwrap.Option(c, fb)          absent: return fb()
//	unwrap.OptionMsg(c, msg, fb)  absent: print msg, return fb()
//
// Diagnostics are single lines written to diag.Default (stderr unless
// replaced).
//
// A fallback is an ordinary function, so it cannot continue the caller's loop
// or return from the caller's function. Two ways around that:
//
// The comma-ok forms leave the control transfer to the caller:
//
//	v, ok := unwrap.ResultOk(c)
//	if !ok {
//		continue
//	}
//
// The signal fallbacks unwind to an enclosing Each, Drain or Scope:
//
//	unwrap.Each(items, func(_ int, c rop.Result[int]) {
//		v := unwrap.Result(c, unwrap.Continue[int])
//		fmt.Println(v)
//	})
//
// A signal raised outside a matching scope is not swallowed; it panics.
package unwrap
