// Package migrations 서버 기동/테스트 시 goose 프로그램 API로 적용할
// SQL 마이그레이션 파일을 컴파일 타임에 내장한다.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
