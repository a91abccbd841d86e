package cli

import "strings"

// PreprocessArgs applies spec.md §6's two argv-shaping rules before cobra
// ever sees the arguments:
//
//  1. Short flags may be bundled ("-kvn5sf" means -k -v -n 5 -s -f); -n is
//     the only short flag taking a value, and its digits may be inlined.
//  2. Long options are case-insensitive ("--Recursive" == "--recursive");
//     short flags are case-sensitive and untouched by this rule.
//
// A bare "--" ends option processing; everything after it is left exactly
// as given, so a path argument that happens to start with a dash is never
// mistaken for a flag.
func PreprocessArgs(argv []string) []string {
	out := make([]string, 0, len(argv))
	done := false
	for _, arg := range argv {
		switch {
		case done:
			out = append(out, arg)
		case arg == "--":
			done = true
			out = append(out, arg)
		case strings.HasPrefix(arg, "--"):
			out = append(out, lowerLongFlagName(arg))
		case isBundledShort(arg):
			out = append(out, expandOne(arg)...)
		default:
			out = append(out, arg)
		}
	}
	return out
}

// lowerLongFlagName lowercases the flag-name portion of a long option,
// leaving any "=value" suffix untouched.
func lowerLongFlagName(arg string) string {
	name := arg[2:]
	if idx := strings.IndexByte(name, '='); idx >= 0 {
		return "--" + strings.ToLower(name[:idx]) + name[idx:]
	}
	return "--" + strings.ToLower(name)
}

// isBundledShort reports whether arg looks like a single-dash short-flag
// cluster worth expanding, e.g. "-kvf" or "-n5". Single flags like "-v" are
// also routed through expandOne; they just come out unchanged.
func isBundledShort(arg string) bool {
	return len(arg) > 1 && arg[0] == '-' && arg[1] != '-'
}

func expandOne(arg string) []string {
	chars := arg[1:]
	var out []string
	i := 0
	for i < len(chars) {
		c := chars[i]
		if c == 'n' {
			out = append(out, "-n")
			i++
			start := i
			for i < len(chars) && chars[i] >= '0' && chars[i] <= '9' {
				i++
			}
			if i > start {
				out = append(out, chars[start:i])
			}
			continue
		}
		out = append(out, "-"+string(c))
		i++
	}
	return out
}
