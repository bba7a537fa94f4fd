// Copyright (c) 2026 Mumu Design Studio. All rights reserved.
// Author: dev@mumudesign.kr

package studio

// ProcessStep describes one stage of the studio's engagement workflow.
type ProcessStep struct {
	Step  string   `json:"step"`
	Title string   `json:"title"`
	Items []string `json:"items"`
}

// DurationGuide is a rough construction-time estimate per project kind.
type DurationGuide struct {
	Label    string `json:"label"`
	Duration string `json:"duration"`
}

// ProcessInfo bundles everything the process page renders.
type ProcessInfo struct {
	Steps        []ProcessStep   `json:"steps"`
	Durations    []DurationGuide `json:"durations"`
	Preparations []string        `json:"preparations"`
}

var processSteps = []ProcessStep{
	{
		Step:  "Step 1",
		Title: "상담 및 현장 진단",
		Items: []string{"요구사항 상담", "현장 실측", "현장 상태 및 설비 확인"},
	},
	{
		Step:  "Step 2",
		Title: "맞춤 설계 및 제안",
		Items: []string{"평면 검토 및 레이아웃 확정", "자재 제안 및 디자인 방향 설정", "3D 시뮬레이션 (필요 시)"},
	},
	{
		Step:  "Step 3",
		Title: "계약",
		Items: []string{"확정 견적서 산출", "공사 일정 협의", "계약 범위 및 특약 사항 정리"},
	},
	{
		Step:  "Step 4",
		Title: "시공 및 감리",
		Items: []string{"공정별 전문 인력 투입", "현장 소장 상주 관리", "실시간 공정 보고"},
	},
	{
		Step:  "Step 5",
		Title: "검수 및 인수인계",
		Items: []string{"최종 마감 점검", "사용 및 관리 방법 안내", "사후관리 보증서 발급"},
	},
}

var durationGuides = []DurationGuide{
	{Label: "주거 (전체 리모델링)", Duration: "4 ~ 6주"},
	{Label: "주거 (부분 리모델링)", Duration: "1 ~ 3주"},
	{Label: "상업/사무 공간", Duration: "2 ~ 4주"},
}

var preparations = []string{
	"아파트의 경우 관리사무소 공사 신고 및 입주민 동의서 (대행 가능)",
	"공사 전 버릴 가구 및 가전 정리",
	"희망하는 스타일의 레퍼런스 이미지 준비",
	"확정된 예산 범위 공유",
}

// Process returns the full engagement workflow description.
func Process() ProcessInfo {
	return ProcessInfo{
		Steps:        append([]ProcessStep(nil), processSteps...),
		Durations:    append([]DurationGuide(nil), durationGuides...),
		Preparations: append([]string(nil), preparations...),
	}
}
