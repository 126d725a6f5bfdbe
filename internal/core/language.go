package core

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Language identifies the programming language of the submitted code.
type Language string

const (
	LanguageJavaScript Language = "javascript"
	LanguageTypeScript Language = "typescript"
	LanguagePython     Language = "python"
	LanguageJava       Language = "java"
	LanguageCSharp     Language = "csharp"
	LanguageCpp        Language = "cpp"
)

var languageLabels = map[Language]string{
	LanguageJavaScript: "JavaScript",
	LanguagePython:     "Python",
	LanguageJava:       "Java",
	LanguageTypeScript: "TypeScript",
	LanguageCSharp:     "C#",
	LanguageCpp:        "C++",
}

var languageExtensions = map[string]Language{
	".js":   LanguageJavaScript,
	".jsx":  LanguageJavaScript,
	".mjs":  LanguageJavaScript,
	".ts":   LanguageTypeScript,
	".tsx":  LanguageTypeScript,
	".py":   LanguagePython,
	".java": LanguageJava,
	".cs":   LanguageCSharp,
	".cpp":  LanguageCpp,
	".cc":   LanguageCpp,
	".cxx":  LanguageCpp,
	".hpp":  LanguageCpp,
	".h":    LanguageCpp,
}

// Languages returns the supported languages in the order clients present them.
func Languages() []Language {
	return []Language{
		LanguageJavaScript,
		LanguagePython,
		LanguageJava,
		LanguageTypeScript,
		LanguageCSharp,
		LanguageCpp,
	}
}

// ParseLanguage maps a user supplied name onto a supported language.
func ParseLanguage(s string) (Language, error) {
	l := Language(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := languageLabels[l]; !ok {
		return "", fmt.Errorf("unsupported language %q", s)
	}
	return l, nil
}

// LanguageFromPath guesses the language from a file extension.
func LanguageFromPath(path string) (Language, bool) {
	l, ok := languageExtensions[strings.ToLower(filepath.Ext(path))]
	return l, ok
}

func (l Language) String() string { return string(l) }

// Label returns the display name, or the raw value for unknown languages.
func (l Language) Label() string {
	if label, ok := languageLabels[l]; ok {
		return label
	}
	return string(l)
}

// Framework identifies the test framework used by the test generation operation.
type Framework string

const (
	FrameworkJest   Framework = "jest"
	FrameworkPytest Framework = "pytest"
	FrameworkJUnit  Framework = "junit"
	FrameworkCatch2 Framework = "catch2"
	FrameworkNUnit  Framework = "nunit"
)

var frameworkLabels = map[Framework]string{
	FrameworkJest:   "Jest (JavaScript)",
	FrameworkPytest: "PyTest (Python)",
	FrameworkJUnit:  "JUnit (Java)",
	FrameworkCatch2: "Catch2 (C++)",
	FrameworkNUnit:  "NUnit (C#)",
}

// Frameworks returns the supported test frameworks in display order.
func Frameworks() []Framework {
	return []Framework{FrameworkJest, FrameworkPytest, FrameworkJUnit, FrameworkCatch2, FrameworkNUnit}
}

// ParseFramework maps a user supplied name onto a supported framework.
func ParseFramework(s string) (Framework, error) {
	f := Framework(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := frameworkLabels[f]; !ok {
		return "", fmt.Errorf("unsupported test framework %q", s)
	}
	return f, nil
}

// DefaultFramework suggests a framework for a language. TypeScript shares Jest with JavaScript.
func DefaultFramework(l Language) Framework {
	switch l {
	case LanguagePython:
		return FrameworkPytest
	case LanguageJava:
		return FrameworkJUnit
	case LanguageCpp:
		return FrameworkCatch2
	case LanguageCSharp:
		return FrameworkNUnit
	default:
		return FrameworkJest
	}
}

func (f Framework) String() string { return string(f) }

// Label returns the display name, or the raw value for unknown frameworks.
func (f Framework) Label() string {
	if label, ok := frameworkLabels[f]; ok {
		return label
	}
	return string(f)
}

// Extensions lists every file extension LanguageFromPath recognizes.
func Extensions() []string {
	exts := make([]string, 0, len(languageExtensions))
	for ext := range languageExtensions {
		exts = append(exts, ext)
	}
	return exts
}
