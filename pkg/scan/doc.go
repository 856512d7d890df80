// Package scan discovers source files and extracts their class declarations.
//
// [Walk] lists the regular files of a project, [DetectLanguage] decides
// whether a file is analyzable, and [ExtractClasses] is a line-oriented
// scanner returning declared class names in order.
//
// The scanner is a heuristic, not a parser: it skips '#' comment lines and
// triple-quoted blocks, and otherwise treats any line starting with the
// class keyword as a declaration. A class name keeps its parenthesized base
// list, e.g. "T(unittest.TestCase)", which later drives classification.
package scan
