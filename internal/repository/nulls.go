package repository

// nullIfEmpty 빈 문자열은 NULL 컬럼으로 저장한다.
func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func deref(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}
