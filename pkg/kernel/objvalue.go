package kernel

import "strings"

type Email string

func (e Email) String() string { return string(e) }

type Phone string

func (p Phone) String() string { return string(p) }

type FullName string

func (n FullName) String() string { return string(n) }

// ContainsFold reports whether the name contains term, case-insensitively.
func (n FullName) ContainsFold(term string) bool {
	return strings.Contains(strings.ToLower(string(n)), strings.ToLower(term))
}

// ResumeCategory is the job-field label a résumé is filed under,
// e.g. "ENGINEERING" or "HR" in the seeded dataset.
type ResumeCategory string

// CategoryAll is the sentinel that disables category filtering.
const CategoryAll ResumeCategory = "all"

func (c ResumeCategory) String() string { return string(c) }

// IsAll reports whether the category is the "no filter" sentinel.
// An empty category is treated the same way.
func (c ResumeCategory) IsAll() bool {
	return c == "" || strings.EqualFold(string(c), string(CategoryAll))
}

type BucketURL string

func (u BucketURL) String() string { return string(u) }
