// Copyright (c) 2026 Mumu Design Studio. All rights reserved.
// Author: dev@mumudesign.kr

package gallery

// # Seed Catalogue

// seedCatalogue is the built-in portfolio shipped with every deployment.
// It is immutable at runtime: admin edits to a seed project are recorded as
// overrides and admin deletions as tombstones, so redeploys never resurrect
// content the studio removed or revert content it reworded.
var seedCatalogue = []Project{
	{
		ID:          "project-residential-01",
		Title:       "30평대 아파트 인테리어 디자인 레퍼런스",
		Category:    CategoryResidential,
		SubCategory: "아파트",
		Area:        "34평",
		Location:    "레퍼런스 디자인",
		Duration:    "4주",
		Scope:       "전체 리모델링",
		Keywords:    []string{"미니멀", "우드톤", "화이트", "친환경"},
		Thumbnail:   "https://i.postimg.cc/rsPpR5Lj/1.png",
		HeroImage:   "https://i.postimg.cc/rsPpR5Lj/1.png",
		Spaces: []Space{
			{
				Name: "거실",
				Images: []string{
					"https://i.postimg.cc/ydf120x5/2.png",
					"https://i.postimg.cc/9MxmsyzH/3.png",
					"https://i.postimg.cc/xCsfBLqQ/4.png",
					"https://i.postimg.cc/zfGX7dXj/7.png",
					"https://i.postimg.cc/s2gDmnDq/8.png",
				},
				Description: "거실은 가족이 함께하는 공간으로, 따뜻한 우드톤과 화이트 컬러를 매치하여 편안한 분위기를 연출했습니다.",
			},
			{
				Name: "주방",
				Images: []string{
					"https://i.postimg.cc/pdLXC0X0/9.png",
					"https://i.postimg.cc/j5Gxst64/10.png",
				},
				Description: "주방은 효율적인 동선과 수납 공간을 확보하는 데 중점을 두었습니다.",
			},
			{
				Name: "복도",
				Images: []string{
					"https://i.postimg.cc/63DW9tLW/11.png",
					"https://i.postimg.cc/zvKJv60r/12.png",
				},
				Description: "복도는 간접 조명을 활용하여 갤러리 같은 분위기를 자아냅니다.",
			},
			{
				Name: "침실",
				Images: []string{
					"https://i.postimg.cc/rpf2pMTg/13.png",
					"https://i.postimg.cc/g0zPdrCq/14.png",
				},
				Description: "침실은 휴식을 위한 공간으로, 차분한 컬러와 조명을 사용하여 아늑함을 더했습니다.",
			},
		},
		Details: []string{
			"input_file_3.png",
			"input_file_4.png",
			"input_file_5.png",
		},
		Comparisons: []Comparison{
			{
				Title: "거실 주야간 분위기 비교",
				Day:   "https://i.postimg.cc/rsPpR5Lj/1.png",
				Night: "https://i.postimg.cc/0Qtkh7jB/1-1.png",
			},
		},
		Description: "공간마다 저마다의 가치를 담아낸 30평대 아파트 인테리어 프로젝트입니다. 미니멀한 감성과 따뜻한 우드톤을 조화롭게 배치하여 시간이 지나도 변함없는 편안함을 제공합니다.",
	},
}

// Seed returns a fresh copy of the seed catalogue slice. The projects share
// their backing slices with the catalogue; callers must treat them as
// read-only.
func Seed() []Project {
	out := make([]Project, len(seedCatalogue))
	copy(out, seedCatalogue)
	return out
}
