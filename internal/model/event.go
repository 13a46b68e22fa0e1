package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// BackgroundType 공개 화면 배경 종류
type BackgroundType string

const (
	BackgroundDefault  BackgroundType = "default"
	BackgroundColor    BackgroundType = "color"
	BackgroundGradient BackgroundType = "gradient"
	BackgroundImage    BackgroundType = "image"
)

func (b BackgroundType) IsValid() bool {
	switch b {
	case BackgroundDefault, BackgroundColor, BackgroundGradient, BackgroundImage:
		return true
	}
	return false
}

// ContentCard 메인 콘텐츠 하이라이트 카드
type ContentCard struct {
	ID             uuid.UUID `json:"id" db:"id"`
	Icon           string    `json:"icon" db:"icon"`
	Title          string    `json:"title" db:"title"`
	Description    string    `json:"description" db:"description"`
	ImageURL       string    `json:"imageUrl,omitempty" db:"image_url"`        // 아이콘 대신 이미지 사용 시
	DetailText     string    `json:"detailText,omitempty" db:"detail_text"`    // 상세 팝업 텍스트
	DetailImageURL string    `json:"detailImageUrl,omitempty" db:"detail_image_url"`
	IsHighlight    bool      `json:"isHighlight,omitempty" db:"is_highlight"`
}

// ScheduleItem 하루 일정표의 한 줄
type ScheduleItem struct {
	ID          uuid.UUID `json:"id" db:"id"`
	Order       int       `json:"order" db:"display_order"`
	Time        string    `json:"time" db:"time"`
	Duration    string    `json:"duration" db:"duration"` // "60분" 같은 자유 텍스트
	Title       string    `json:"title" db:"title"`
	Subtitle    string    `json:"subtitle,omitempty" db:"subtitle"`
	IsHighlight bool      `json:"isHighlight,omitempty" db:"is_highlight"`
}

// DaySchedule 일차 단위 일정. Day는 1부터 시작하고 삭제 시 다시 매겨진다.
type DaySchedule struct {
	Day   int            `json:"day" db:"day"`
	Date  string         `json:"date" db:"date"` // "2/27 (금)" 같은 자유 텍스트
	Items []ScheduleItem `json:"items"`
}

type TransportRoute struct {
	From string `json:"from"`
	To   string `json:"to"`
	Time string `json:"time"`
}

// TransportInfo 같은 type의 이동 경로 묶음 ("KTX", "시외버스" 등)
type TransportInfo struct {
	Type   string           `json:"type"`
	Routes []TransportRoute `json:"routes"`
}

// FlatTransportRoute transport_routes 테이블의 한 행. 저장 시 (type, route) 쌍으로 펼친다.
type FlatTransportRoute struct {
	Type         string
	Route        TransportRoute
	DisplayOrder int
}

type LocationInfo struct {
	Name             string          `json:"name"`
	Address          string          `json:"address"`
	NaverMapURL      string          `json:"naverMapUrl,omitempty"`
	KakaoMapURL      string          `json:"kakaoMapUrl,omitempty"`
	Transport        []TransportInfo `json:"transport"`
	Note             string          `json:"note,omitempty"`
	PensionURL       string          `json:"pensionUrl,omitempty"`
	PensionLinkTitle string          `json:"pensionLinkTitle,omitempty"`
}

// Event 루트 엔티티. 전체 컬렉션에서 IsActive=true는 최대 한 건이어야 하며
// 이 불변식은 활성화 연산이 절차적으로 유지한다 (전체 해제 후 한 건 설정).
type Event struct {
	ID              uuid.UUID      `json:"id" db:"id"`
	Title           string         `json:"title" db:"title"`
	Subtitle        *string        `json:"subtitle,omitempty" db:"subtitle"`
	IsActive        bool           `json:"isActive" db:"is_active"`
	BackgroundType  BackgroundType `json:"backgroundType,omitempty" db:"background_type"`
	BackgroundValue string         `json:"backgroundValue,omitempty" db:"background_value"`
	DefaultTheme    ThemeMode      `json:"defaultTheme,omitempty" db:"default_theme"`
	MainContent     []ContentCard  `json:"mainContent"`
	Schedules       []DaySchedule  `json:"schedules"`
	Location        LocationInfo   `json:"location"`
	CreatedAt       time.Time      `json:"created_at,omitempty" db:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at,omitempty" db:"updated_at"`
}

// UpdateEventParams events 행의 부분 업데이트 (자식 테이블은 건드리지 않음)
type UpdateEventParams struct {
	Title    *string
	Subtitle *string
	IsActive *bool
}

// EventPatch 로컬 스토어 shallow-merge용. nil이 아닌 필드만 덮어쓴다.
type EventPatch struct {
	Title           *string
	Subtitle        *string
	IsActive        *bool
	BackgroundType  *BackgroundType
	BackgroundValue *string
	DefaultTheme    *ThemeMode
	MainContent     []ContentCard
	Schedules       []DaySchedule
	Location        *LocationInfo
}

// FilterForCreate 생성 플로우의 저장 필터.
// 카드는 제목 AND 설명, 일정 항목은 제목 AND 시간이 있어야 저장된다.
// 편집 플로우(FilterForEdit)는 OR로 완화되어 있고 이 비대칭은 관찰된 동작 그대로 유지한다.
func (e Event) FilterForCreate() Event {
	filtered := e

	cards := make([]ContentCard, 0, len(e.MainContent))
	for _, c := range e.MainContent {
		if strings.TrimSpace(c.Title) != "" && strings.TrimSpace(c.Description) != "" {
			cards = append(cards, c)
		}
	}
	filtered.MainContent = cards

	days := make([]DaySchedule, 0, len(e.Schedules))
	for _, s := range e.Schedules {
		if strings.TrimSpace(s.Date) == "" || len(s.Items) == 0 {
			continue
		}
		items := make([]ScheduleItem, 0, len(s.Items))
		for _, i := range s.Items {
			if strings.TrimSpace(i.Title) != "" && strings.TrimSpace(i.Time) != "" {
				items = append(items, i)
			}
		}
		s.Items = items
		days = append(days, s)
	}
	filtered.Schedules = days

	filtered.Location.Transport = filterTransport(e.Location.Transport, true)
	return filtered
}

// FilterForEdit 편집 플로우의 저장 필터 (제목 OR 설명, 제목 OR 시간).
func (e Event) FilterForEdit() Event {
	filtered := e

	cards := make([]ContentCard, 0, len(e.MainContent))
	for _, c := range e.MainContent {
		if strings.TrimSpace(c.Title) != "" || strings.TrimSpace(c.Description) != "" {
			cards = append(cards, c)
		}
	}
	filtered.MainContent = cards

	days := make([]DaySchedule, 0, len(e.Schedules))
	for _, s := range e.Schedules {
		if strings.TrimSpace(s.Date) == "" {
			continue
		}
		items := make([]ScheduleItem, 0, len(s.Items))
		for _, i := range s.Items {
			if strings.TrimSpace(i.Title) != "" || strings.TrimSpace(i.Time) != "" {
				items = append(items, i)
			}
		}
		s.Items = items
		days = append(days, s)
	}
	filtered.Schedules = days

	filtered.Location.Transport = filterTransport(e.Location.Transport, false)
	return filtered
}

// filterTransport type이 비어있지 않고 유효한 route가 하나라도 있는 묶음만 남긴다.
// requireBoth가 true면 route는 from AND to, false면 from OR to 기준.
func filterTransport(transport []TransportInfo, requireBoth bool) []TransportInfo {
	validRoute := func(r TransportRoute) bool {
		if requireBoth {
			return strings.TrimSpace(r.From) != "" && strings.TrimSpace(r.To) != ""
		}
		return strings.TrimSpace(r.From) != "" || strings.TrimSpace(r.To) != ""
	}

	result := make([]TransportInfo, 0, len(transport))
	for _, t := range transport {
		if strings.TrimSpace(t.Type) == "" {
			continue
		}
		routes := make([]TransportRoute, 0, len(t.Routes))
		for _, r := range t.Routes {
			if validRoute(r) {
				routes = append(routes, r)
			}
		}
		if len(routes) == 0 {
			continue
		}
		result = append(result, TransportInfo{Type: t.Type, Routes: routes})
	}
	return result
}

// RemoveDay 해당 일차를 제거하고 남은 일차를 1부터 연속되게 다시 매긴다.
func RemoveDay(schedules []DaySchedule, day int) []DaySchedule {
	result := make([]DaySchedule, 0, len(schedules))
	for _, s := range schedules {
		if s.Day == day {
			continue
		}
		s.Day = len(result) + 1
		result = append(result, s)
	}
	return result
}

// FlattenTransport transport 묶음을 행 단위로 펼친다.
// display_order는 type별이 아니라 전체에 걸쳐 1부터 단조 증가한다.
func FlattenTransport(transport []TransportInfo) []FlatTransportRoute {
	rows := make([]FlatTransportRoute, 0)
	order := 1
	for _, t := range transport {
		for _, r := range t.Routes {
			rows = append(rows, FlatTransportRoute{
				Type:         t.Type,
				Route:        r,
				DisplayOrder: order,
			})
			order++
		}
	}
	return rows
}

// GroupTransport 펼쳐진 행을 type별로 다시 묶는다. 묶음 순서는 type의 최초 등장 순서.
func GroupTransport(rows []FlatTransportRoute) []TransportInfo {
	grouped := make([]TransportInfo, 0)
	index := make(map[string]int)
	for _, row := range rows {
		i, ok := index[row.Type]
		if !ok {
			i = len(grouped)
			index[row.Type] = i
			grouped = append(grouped, TransportInfo{Type: row.Type, Routes: []TransportRoute{}})
		}
		grouped[i].Routes = append(grouped[i].Routes, row.Route)
	}
	return grouped
}
