package parser

import (
	"os"
	"slices"
	"strings"
	"testing"
	"unicode"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/unicode/norm"

	"triptalk/internal/models/request_models"
	"triptalk/internal/models/trip_models"
)

func fence(tag, body string) string {
	return "```" + tag + "\n" + body + "\n```"
}

func loadPlan(t *testing.T) string {
	t.Helper()
	b, err := os.ReadFile("testdata/jeju_plan.md")
	require.NoError(t, err)
	return string(b)
}

func jejuRequest() request_models.TravelInput {
	return request_models.TravelInput{
		Companions:  "연인",
		Departure:   "서울",
		Destination: "제주도",
		StartDate:   "2024.03.15",
		EndDate:     "2024.03.18",
		Style:       []trip_models.TravelStyle{trip_models.StyleNature},
		Budget:      "50만~100만원",
	}
}

func TestExtractBlocks(t *testing.T) {
	doc := "intro\n" + fence("json", `{"day": 1}`) + "\nmiddle\n" +
		fence("json", "{\n  \"day\": 2,\n  \"note\": \"a ``` b\"\n}") + "\n" +
		fence("transportation", `{}`)

	got := ExtractBlocks(doc, TagTimeline)
	require.Len(t, got, 2)
	assert.Equal(t, `{"day": 1}`, got[0])
	assert.Contains(t, got[1], `"day": 2`)

	assert.Len(t, ExtractBlocks(doc, TagTransportation), 1)
	assert.NotNil(t, ExtractBlocks(doc, TagAccommodations))
	assert.Empty(t, ExtractBlocks(doc, TagAccommodations))
}

func TestExtractBlocks_RequiresExactTag(t *testing.T) {
	doc := fence("jsonc", `{"day": 1}`) + "\n" + fence("json  ", `{"day": 2}`)
	got := ExtractBlocks(doc, TagTimeline)
	require.Len(t, got, 1)
	assert.Equal(t, `{"day": 2}`, got[0])
}

func TestStripFencedBlocks(t *testing.T) {
	doc := loadPlan(t)
	stripped := StripFencedBlocks(doc)

	for _, tag := range knownTags {
		assert.NotContains(t, stripped, "```"+tag)
	}
	assert.True(t, strings.HasPrefix(stripped, "# 🌊"))
	assert.True(t, strings.HasSuffix(stripped, "즐거운 여행 되세요!"))
}

func TestStripFencedBlocks_RecoversAllContent(t *testing.T) {
	doc := loadPlan(t)

	var rebuilt strings.Builder
	rebuilt.WriteString(StripFencedBlocks(doc))
	for _, tag := range knownTags {
		for _, payload := range ExtractBlocks(doc, tag) {
			rebuilt.WriteString("```" + tag + payload + "```")
		}
	}

	assert.Equal(t, nonSpaceRunes(doc), nonSpaceRunes(rebuilt.String()))
}

func nonSpaceRunes(s string) []rune {
	out := make([]rune, 0, utf8.RuneCountInString(s))
	for _, r := range s {
		if !unicode.IsSpace(r) {
			out = append(out, r)
		}
	}
	slices.Sort(out)
	return out
}

func TestParseTimeline(t *testing.T) {
	days := ParseTimeline(loadPlan(t), "2024.03.15")

	require.Len(t, days, 3)
	assert.Equal(t, []int{1, 2, 4}, []int{days[0].Day, days[1].Day, days[2].Day})
	assert.Equal(t, "2024.03.15", days[0].Date)
	assert.Equal(t, "2024.03.16", days[1].Date)
	assert.Equal(t, "2024.03.18", days[2].Date)

	require.Len(t, days[0].Schedules, 3)
	for i, item := range days[0].Schedules {
		assert.Equal(t, i+1, item.OrderIndex)
	}
	assert.Equal(t, "고기국수 점심", days[0].Schedules[1].Title)

	assert.NotNil(t, days[2].Schedules)
	assert.Empty(t, days[2].Schedules)
}

func TestParseTimeline_DateFormats(t *testing.T) {
	doc := fence("json", `{"day": 3, "schedules": []}`)
	for _, start := range []string{"2024.02.27", "2024/02/27", "2024-02-27"} {
		days := ParseTimeline(doc, start)
		require.Len(t, days, 1, start)
		assert.Equal(t, "2024.02.29", days[0].Date, start)
	}
}

func TestParseTimeline_BadStartDateNeverFails(t *testing.T) {
	doc := fence("json", `{"day": 1, "schedules": []}`)
	days := ParseTimeline(doc, "next friday")
	require.Len(t, days, 1)
	assert.Len(t, days[0].Date, len("2006.01.02"))
}

func TestParseTimeline_NoBlocks(t *testing.T) {
	days := ParseTimeline("그냥 텍스트만 있는 일정", "2024.03.15")
	assert.NotNil(t, days)
	assert.Empty(t, days)
}

func TestParseTimeline_IgnoresSourceIndexes(t *testing.T) {
	doc := fence("json", `{"day": 1, "schedules": [
		{"order_index": 5, "time": "18:00", "title": "c"},
		{"index": 1, "time": "09:00", "title": "a"},
		{"sequence": 2, "time": "12:00", "title": "b"}
	]}`)
	days := ParseTimeline(doc, "2024.03.15")
	require.Len(t, days, 1)

	var titles []string
	for i, item := range days[0].Schedules {
		assert.Equal(t, i+1, item.OrderIndex)
		titles = append(titles, item.Title)
	}
	assert.Equal(t, []string{"c", "a", "b"}, titles)
}

func TestParseTimeline_TruncatesText(t *testing.T) {
	long := strings.Repeat("가", 300)
	doc := fence("json", `{"day": 1, "schedules": [{"time": "09:00", "title": "`+long+`", "description": "`+long+`"}]}`)

	days := ParseTimeline(doc, "2024.03.15")
	require.Len(t, days, 1)
	item := days[0].Schedules[0]
	assert.Equal(t, trip_models.ScheduleTitleMaxLen, utf8.RuneCountInString(item.Title))
	assert.Equal(t, trip_models.ScheduleDescriptionMaxLen, utf8.RuneCountInString(item.Description))
}

func TestParseTimeline_SkipsInvalidDays(t *testing.T) {
	doc := fence("json", `[{"day": 0}, {"day": -1}, {"schedules": []}, "day 5", {"day": 2}]`)
	days := ParseTimeline(doc, "2024.03.15")
	require.Len(t, days, 1)
	assert.Equal(t, 2, days[0].Day)
}

func TestParseTransportation(t *testing.T) {
	out, ret := ParseTransportation(loadPlan(t))
	require.NotNil(t, out)
	require.NotNil(t, ret)

	assert.Equal(t, "김포", out.Origin)
	assert.Equal(t, "제주", out.Destination)
	assert.Equal(t, "제주항공", out.Name)
	assert.Equal(t, 65000, out.Price)
	assert.Equal(t, "08:00", out.DepartureTime)

	assert.Equal(t, trip_models.TransportationLeg{Origin: "제주", Destination: "김포", Name: "대한항공", Price: 72000}, *ret)
}

func TestParseTransportation_SingleObject(t *testing.T) {
	doc := fence("transportation", `{"origin": "서울", "destination": "부산", "name": "KTX", "price": 59800}`)
	out, ret := ParseTransportation(doc)
	require.NotNil(t, out)
	assert.Equal(t, "KTX", out.Name)
	assert.Nil(t, ret)
}

func TestParseTransportation_Degrades(t *testing.T) {
	cases := map[string]string{
		"no block":     "text",
		"invalid json": fence("transportation", `[{"origin": "서울",`),
		"empty leg":    fence("transportation", `[{"origin": "서울", "name": "KTX"}, {"price": 1000}]`),
		"scalar":       fence("transportation", `"KTX"`),
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			out, ret := ParseTransportation(doc)
			assert.Nil(t, out)
			assert.Nil(t, ret)
		})
	}
}

func TestParseTransportation_PartialArrays(t *testing.T) {
	out, ret := ParseTransportation(fence("transportation", `[]`))
	assert.Nil(t, out)
	assert.Nil(t, ret)

	out, ret = ParseTransportation(fence("transportation", `["skip", {"name": "KTX"}, {"name": "ignored"}]`))
	assert.Nil(t, out)
	require.NotNil(t, ret)
	assert.Equal(t, "KTX", ret.Name)
}

func TestParseTransportation_FirstBlockOnly(t *testing.T) {
	doc := fence("transportation", `{"name": "first"}`) + "\n" + fence("transportation", `{"name": "second"}`)
	out, _ := ParseTransportation(doc)
	require.NotNil(t, out)
	assert.Equal(t, "first", out.Name)
}

func TestParseAccommodations(t *testing.T) {
	got := ParseAccommodations(loadPlan(t))
	require.Len(t, got, 2)
	assert.Equal(t, 250000, got[0].PricePerNight)
	assert.Equal(t, 2, got[0].Nights)
	assert.Equal(t, "제주 게스트하우스", got[1].Name)
	assert.Equal(t, 60000, got[1].PricePerNight)
}

func TestParseAccommodations_Shapes(t *testing.T) {
	single := ParseAccommodations(fence("accommodations", `{"name": "호텔", "address": "부산", "price_per_night": 90000}`))
	require.Len(t, single, 1)
	assert.Equal(t, "호텔", single[0].Name)

	mixed := ParseAccommodations(fence("accommodations", `[1, {"name": "호텔"}, null]`))
	require.Len(t, mixed, 1)

	broken := ParseAccommodations(fence("accommodations", `[{"name": "호텔"`))
	assert.NotNil(t, broken)
	assert.Empty(t, broken)

	assert.Empty(t, ParseAccommodations("no block"))
}

func TestExtractTitle(t *testing.T) {
	cases := []struct {
		name string
		doc  string
		want string
	}{
		{"bold label", "intro\n- **제목:** 부산 바다 여행 (2박 3일)\n# 다른 여행", "부산 바다 여행"},
		{"plain label", "제목: 강릉 커피 투어", "강릉 커피 투어"},
		{"plain label with emphasis elsewhere is skipped", "제목: **굵게**\n## 경주 역사 관광", "경주 역사 관광"},
		{"heading", "## 🏝️ 제주 힐링 여행 (연인)", "🏝️ 제주 힐링 여행"},
		{"heading without keyword", "# 일정표\n본문", "제주도 여행"},
		{"nothing", "", "제주도 여행"},
		{"empty label", "**제목:** (미정)", "제주도 여행"},
		{"bold label without value", "- **제목:** ", "제주도 여행"},
		{"plain label with only a duration", "제목: (3박 4일)", "제주도 여행"},
		{"empty first match does not fall through", "- **제목:** \n## 경주 역사 관광", "제주도 여행"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ExtractTitle(tc.doc, "제주도"))
		})
	}
}

func TestExtractTitle_FromFixture(t *testing.T) {
	assert.Equal(t, "제주도 3박 4일 힐링 여행", ExtractTitle(loadPlan(t), "제주도"))
}

func TestExtractTitle_Truncates(t *testing.T) {
	got := ExtractTitle("제목: "+strings.Repeat("길", 150), "제주도")
	assert.Equal(t, trip_models.TitleMaxLen, utf8.RuneCountInString(got))
}

func TestExtractHighlights(t *testing.T) {
	assert.Equal(t,
		[]string{"성산일출봉 일출 감상", "한라산 트레킹", "오션뷰 카페 투어"},
		ExtractHighlights(loadPlan(t), "제주도"))
}

func TestExtractHighlights_StateTransitions(t *testing.T) {
	doc := strings.Join([]string{
		"- 소개 문장",
		"### 하이라이트",
		"- 첫째",
		"**강조만 있는 줄**",
		"* 둘째",
		"일반 문장이 나오면 종료",
		"- 무시됨",
		"## 또 다른 하이라이트",
		"• 셋째",
		"---",
		"- 무시됨",
	}, "\n")
	assert.Equal(t, []string{"첫째", "둘째", "셋째"}, ExtractHighlights(doc, "제주도"))
}

func TestExtractHighlights_CapAndDefaults(t *testing.T) {
	var b strings.Builder
	b.WriteString("하이라이트:\n")
	for i := 0; i < 8; i++ {
		b.WriteString("- 항목\n")
	}
	assert.Len(t, ExtractHighlights(b.String(), "제주도"), trip_models.MaxHighlights)

	assert.Equal(t, []string{"제주도 탐방", "맛집 투어", "문화 체험"}, ExtractHighlights("하이라이트\n\n-\n", "제주도"))
	assert.Equal(t, DefaultHighlights("부산"), ExtractHighlights("", "부산"))
}

func TestExtractHighlights_NormalizesDecomposedHangul(t *testing.T) {
	decomposed := norm.NFD.String("하이라이트")
	require.NotContains(t, decomposed, "하이라이트")

	got := ExtractHighlights(decomposed+"\n- 해변 산책", "제주도")
	assert.Equal(t, []string{"해변 산책"}, got)
}

func TestAssembleTripPlan(t *testing.T) {
	req := jejuRequest()
	req.Style = []trip_models.TravelStyle{trip_models.StyleNature, trip_models.StyleNature}
	doc := loadPlan(t)

	plan := AssembleTripPlan(doc, req)

	_, err := uuid.Parse(plan.ID)
	require.NoError(t, err)
	assert.Equal(t, "제주도 3박 4일 힐링 여행", plan.Title)
	assert.Equal(t, "제주도", plan.Destination)
	assert.Equal(t, "서울", plan.Departure)
	assert.Equal(t, []trip_models.TravelStyle{trip_models.StyleNature}, plan.TravelStyles)
	assert.Equal(t, doc, plan.FullPlan)
	require.NotEmpty(t, plan.DailySchedules)
	assert.Equal(t, "2024.03.15", plan.DailySchedules[0].Date)
	assert.GreaterOrEqual(t, len(plan.Highlights), 1)
	assert.LessOrEqual(t, len(plan.Highlights), trip_models.MaxHighlights)
	assert.NotNil(t, plan.OutboundTransportation)
	assert.Len(t, plan.Accommodations, 2)

	again := AssembleTripPlan(doc, req)
	assert.NotEqual(t, plan.ID, again.ID)
}

func TestAssembleTripPlan_MalformedAccommodations(t *testing.T) {
	doc := "제목: 제주 여행\n" +
		fence("json", `{"day": 1, "schedules": [{"time": "09:00", "title": "공항"}]}`) + "\n" +
		fence("accommodations", `[{"name": "호텔", `)

	plan := AssembleTripPlan(doc, jejuRequest())
	assert.NotEmpty(t, plan.ID)
	assert.Empty(t, plan.Accommodations)
	assert.Len(t, plan.DailySchedules, 1)
	assert.Equal(t, DefaultHighlights("제주도"), []string(plan.Highlights))
}
