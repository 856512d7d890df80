// Package imports finds the files a Python source file statically depends on.
//
// [Parse] reads import statements with tree-sitter; [Resolver] maps them one
// hop to project files; [Finder] combines both for a file on disk and is the
// exported dependency finder for callers that index a project without the
// pipeline.
//
// Resolution rules:
//
//   - "import a.b" resolves to a/b.py, else a/b/__init__.py, searched from the
//     project root and then from the importing file's directory.
//   - "from a import b" prefers the submodule a/b.py (or a/b/__init__.py) and
//     falls back to the module a itself.
//   - Relative imports ("from . import x", "from ..m import y") resolve
//     against the importing file's package directory and are dropped when no
//     file matches.
//   - Absolute imports that match no project file resolve to the pseudo path
//     "<top-level package>.py", so "import os.path" yields "os.py". Such
//     modules host no class and surface as module-only nodes.
package imports
