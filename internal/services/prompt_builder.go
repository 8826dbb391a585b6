package services

import (
	"fmt"
	"strings"

	"triptalk/internal/models/request_models"
	"triptalk/internal/models/trip_models"
	"triptalk/internal/parser"
)

const noFeedbackHistory = "이전 피드백 없음"

const planPromptTemplate = `
당신은 전문 여행 플래너이자 컨시어지입니다.
아래 사용자의 여행 정보를 바탕으로 실제 존재하는 장소, 숙소, 맛집을 포함한 여행 일정을 작성하고,
상단에는 카드 형태로 표현할 수 있는 요약 정보(하이라이트)를 함께 생성하세요.

---

[여행 정보]
- 출발지: %s
- 여행지: %s
- 동행자: %s
- 여행 기간: %s ~ %s
- 여행 스타일: %s
- 예산: %s

---

[요청 조건]
1. 출력은 (1) 여행 요약 카드 섹션과 (2) 상세 일정 섹션으로 구성하세요.
2. 요약 카드에는 "- **제목:** <여행 제목>" 줄과, "- **하이라이트:**" 줄 아래 "  • " 글머리표로 3~5개의 하이라이트를 넣으세요.
3. 상세 일정은 일자별로 오전/오후/저녁 단위로 나누고 짧은 설명을 포함하세요.
4. 이동수단과 숙소는 실제 운영 중인 업체명과 요금을 명시하세요.
5. 전체 일정은 주어진 예산 내에서 현실적으로 구성하세요.
6. [필수] 각 일자 섹션 마지막에 ` + "```" + parser.TagTimeline + ` 코드 블록으로 타임라인을 작성하세요:
   {"day": 1, "schedules": [{"time": "HH:MM", "title": "활동명", "description": "간결한 설명"}]}
7. [필수] 여행 계획 끝에 한 번만 ` + "```" + parser.TagTransportation + ` 코드 블록으로 [가는 편, 돌아오는 편] 배열을 작성하세요:
   [{"type": "비행기", "route": "김포공항 → 제주공항", "price": "65,000원", "company": "대한항공", "departure_time": "09:00", "arrival_time": "10:05"}, {...}]
8. [필수] 여행 계획 끝에 한 번만 ` + "```" + parser.TagAccommodations + ` 코드 블록으로 숙소 배열을 작성하세요:
   [{"name": "제주 신라호텔", "address": "서귀포시 중문관광로", "price_per_night": "250,000원", "check_in_date": "YYYY-MM-DD", "check_out_date": "YYYY-MM-DD", "nights": 1}]

---
이제 위 형식을 기반으로 여행 일정을 작성하세요.
반드시 각 일자마다 ` + "```" + parser.TagTimeline + ` 코드 블록을 생성하세요.
`

const feedbackPromptTemplate = `
당신은 전문 여행 플래너이자 컨시어지입니다.
아래의 **기존 여행 일정**을 기반으로 사용자의 피드백을 반영하여 새로운 일정을 작성하세요.

---

[기존 여행 일정]
%s

---

[이전 대화 기록]
%s

---

[사용자 피드백]
%s

---

1. 기존 여행지와 전체 일정 구조는 그대로 유지합니다.
2. 음식, 예산, 날짜처럼 명확한 제약 조건은 반드시 반영하고, 선호 사항은 일정의 균형을 유지하며 반영하세요.
3. 수정된 여행 일정만 기존과 동일한 형식(제목, 하이라이트, 코드 블록 포함)으로 출력하세요.
4. "알겠습니다" 같은 설명 문장은 포함하지 마세요.
`

// BuildPlanPrompt renders the creation prompt. Styles are shown by their
// Korean labels.
func BuildPlanPrompt(req request_models.TravelInput) string {
	return fmt.Sprintf(planPromptTemplate,
		req.Departure,
		req.Destination,
		req.Companions,
		req.StartDate, req.EndDate,
		strings.Join(trip_models.StyleLabels(req.Style), ", "),
		req.Budget,
	)
}

// BuildFeedbackPrompt renders a revision prompt from the current draft, the
// earlier feedback messages and the new one.
func BuildFeedbackPrompt(latestPlan string, history []string, message string) string {
	return fmt.Sprintf(feedbackPromptTemplate, latestPlan, renderHistory(history), message)
}

func renderHistory(history []string) string {
	if len(history) == 0 {
		return noFeedbackHistory
	}
	lines := make([]string, 0, len(history))
	for _, m := range history {
		lines = append(lines, "- "+m)
	}
	return strings.Join(lines, "\n")
}
