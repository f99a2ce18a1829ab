package dateutil

import "time"

// DefaultLayout은 별도 설정이 없을 때 사용하는 표시용 날짜 형식
const DefaultLayout = "2006-01-02 15:04:05"

// Formatter는 저장된 타임스탬프를 화면 표시용 문자열로 변환한다.
// 형식은 설정에서 주입되며 생성 이후 변경되지 않는다.
type Formatter struct {
	layout string
}

// NewFormatter는 주어진 레이아웃의 Formatter를 생성한다. 빈 레이아웃은 기본값으로 대체.
func NewFormatter(layout string) *Formatter {
	if layout == "" {
		layout = DefaultLayout
	}
	return &Formatter{layout: layout}
}

// Format은 타임스탬프를 표시용 문자열로 변환한다.
func (f *Formatter) Format(t time.Time) string {
	return t.Format(f.layout)
}
