package store

import (
	"trip-event-page/internal/model"

	"github.com/google/uuid"
)

func strPtr(s string) *string { return &s }

// DemoEvent 강릉 2박 3일 예시 이벤트.
// 원격에도 로컬에도 데이터가 없을 때 공개 화면이 비지 않도록 심는 기본 데이터.
func DemoEvent() model.Event {
	item := func(order int, time, duration, title, subtitle string) model.ScheduleItem {
		return model.ScheduleItem{
			ID:       uuid.New(),
			Order:    order,
			Time:     time,
			Duration: duration,
			Title:    title,
			Subtitle: subtitle,
		}
	}

	return model.Event{
		ID:       uuid.New(),
		Title:    "강릉 2박 3일 여행",
		Subtitle: strPtr("2.27(금) ~ 3.1(일) · 2박 3일"),
		IsActive: true,
		MainContent: []model.ContentCard{
			{
				ID:          uuid.New(),
				Title:       "겨울 바다, 그 특별한 순간",
				Description: "차가운 바람과 푸른 파도가 만드는 겨울 동해의 감성을 온몸으로 느껴보세요",
			},
			{
				ID:          uuid.New(),
				Title:       "강릉의 맛, 미식 로드트립",
				Description: "초당순두부, 활어회, 강릉 커피까지 입이 즐거운 미식 여정",
			},
			{
				ID:          uuid.New(),
				Title:       "프레임 속 추억 한 컷",
				Description: "경포대, 안목해변, 정동진에서 남기는 인생샷 스팟 투어",
			},
		},
		Schedules: []model.DaySchedule{
			{
				Day:  1,
				Date: "2/27 (금)",
				Items: []model.ScheduleItem{
					item(1, "07:00", "180분", "서울 출발 → 강릉 도착", "KTX 또는 버스 이용"),
					item(2, "10:00", "60분", "숙소 체크인", "짐 풀고 휴식"),
					item(3, "11:00", "90분", "초당순두부마을", "점심 식사"),
					item(4, "13:00", "120분", "경포대 & 경포해변", "해변 산책 및 사진 촬영"),
					item(5, "15:30", "90분", "안목커피거리", "커피 한 잔과 함께 바다 구경"),
					item(6, "17:30", "120분", "저녁식사", "강릉 맛집 탐방"),
					item(7, "19:30", "", "숙소 복귀 및 자유시간", "휴식 및 취침"),
				},
			},
			{
				Day:  2,
				Date: "2/28 (토)",
				Items: []model.ScheduleItem{
					item(1, "08:00", "60분", "조식", "숙소 조식 또는 근처 식당"),
					item(2, "09:30", "150분", "정동진 해돋이공원", "정동진역, 모래시계공원"),
					item(3, "12:00", "90분", "주문진 수산시장", "점심식사 및 시장 구경"),
					item(4, "14:00", "120분", "아르떼뮤지엄", "미디어 아트 체험"),
					item(5, "16:30", "90분", "강문해변", "해변 산책"),
					item(6, "18:30", "120분", "저녁식사", "회센터 또는 물회"),
					item(7, "20:30", "", "숙소 복귀", "휴식 및 취침"),
				},
			},
			{
				Day:  3,
				Date: "3/1 (일)",
				Items: []model.ScheduleItem{
					item(1, "08:00", "60분", "조식 및 체크아웃", "짐 정리"),
					item(2, "09:30", "120분", "오죽헌/시립박물관", "역사 문화 탐방"),
					item(3, "12:00", "90분", "점심식사", "강릉 명물 음식"),
					item(4, "14:00", "180분", "강릉 출발 → 서울 도착", "귀가"),
				},
			},
		},
		Location: model.LocationInfo{
			Name:        "강릉 위스테이독채펜션",
			Address:     "강원 강릉시 성산면 송두길 46-23",
			NaverMapURL: "https://naver.me/GdTsE1UE",
			KakaoMapURL: "https://place.map.kakao.com/1116450593",
			Transport: []model.TransportInfo{
				{
					Type: "KTX",
					Routes: []model.TransportRoute{
						{From: "서울역", To: "강릉역", Time: "약 2시간 (최단 112분)"},
					},
				},
				{
					Type: "시외버스",
					Routes: []model.TransportRoute{
						{From: "동서울터미널", To: "강릉터미널", Time: "약 3시간"},
					},
				},
				{
					Type: "펜션 이동",
					Routes: []model.TransportRoute{
						{From: "강릉역", To: "위스테이독채펜션", Time: "차량 12km (약 20분) / 택시 15,000원"},
					},
				},
			},
			Note: "* KTX는 사전 예약 필수 / 주말은 예매가 빠르니 미리 구매하세요",
		},
	}
}
