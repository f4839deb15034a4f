package types

import "strings"

// Label renders id the way annotated output prints it:
// int, bool, void, string, the struct name, or "int,bool->void" for functions.
func Label(in *Interner, id TypeID) string {
	tt, ok := in.Lookup(id)
	if !ok {
		return "?"
	}
	switch tt.Kind {
	case KindError:
		return "<error>"
	case KindVoid, KindBool, KindInt, KindString:
		return tt.Kind.String()
	case KindStruct:
		if info, ok := in.StructInfo(id); ok && info.Label != "" {
			return info.Label
		}
		return "struct"
	case KindFn:
		info, ok := in.FnInfo(id)
		if !ok {
			return "fn"
		}
		var b strings.Builder
		for i, p := range info.Params {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteString(Label(in, p))
		}
		b.WriteString("->")
		b.WriteString(Label(in, info.Result))
		return b.String()
	}
	return "?"
}
