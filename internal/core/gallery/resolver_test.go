// Copyright (c) 2026 Mumu Design Studio. All rights reserved.
// Author: dev@mumudesign.kr

package gallery

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func seedFixture() []Project {
	return []Project{
		{ID: "project-residential-01", Title: "아파트 레퍼런스", Category: CategoryResidential},
		{ID: "project-commercial-01", Title: "카페 인테리어", Category: CategoryCommercial},
	}
}

/*
TestEffective_SeedOnly verifies that an empty overlay yields the seed
catalogue unchanged and in order.
*/
func TestEffective_SeedOnly(t *testing.T) {
	merged := Effective(seedFixture(), nil, nil)

	assert.Len(t, merged, 2)
	assert.Equal(t, "project-residential-01", merged[0].ID)
	assert.Equal(t, "project-commercial-01", merged[1].ID)
}

/*
TestEffective_OverrideReplacesInPlace verifies that an override with a seed
id substitutes the seed entry without moving it.
*/
func TestEffective_OverrideReplacesInPlace(t *testing.T) {
	overrides := []Project{
		{ID: "project-commercial-01", Title: "카페 리뉴얼", Category: CategoryCommercial},
	}

	merged := Effective(seedFixture(), overrides, nil)

	assert.Len(t, merged, 2)
	assert.Equal(t, "project-commercial-01", merged[1].ID)
	assert.Equal(t, "카페 리뉴얼", merged[1].Title)
}

/*
TestEffective_AdditionsAppendInInsertionOrder verifies that overrides with no
seed counterpart are appended after the seed block, oldest first.
*/
func TestEffective_AdditionsAppendInInsertionOrder(t *testing.T) {
	overrides := []Project{
		{ID: "project-1700000000001", Title: "사무실 A"},
		{ID: "project-1700000000002", Title: "사무실 B"},
	}

	merged := Effective(seedFixture(), overrides, nil)

	assert.Len(t, merged, 4)
	assert.Equal(t, "project-1700000000001", merged[2].ID)
	assert.Equal(t, "project-1700000000002", merged[3].ID)
}

/*
TestEffective_TombstoneHidesSeed verifies that a tombstoned seed id is
excluded even when an override exists for it.
*/
func TestEffective_TombstoneHidesSeed(t *testing.T) {
	overrides := []Project{
		{ID: "project-residential-01", Title: "편집된 아파트"},
	}
	tombstones := []string{"project-residential-01"}

	merged := Effective(seedFixture(), overrides, tombstones)

	assert.Len(t, merged, 1)
	assert.Equal(t, "project-commercial-01", merged[0].ID)
}

/*
TestEffective_TombstoneHidesAddition verifies that no tombstoned id ever
appears in the result, including added projects.
*/
func TestEffective_TombstoneHidesAddition(t *testing.T) {
	overrides := []Project{
		{ID: "project-1700000000001", Title: "사무실 A"},
	}
	tombstones := []string{"project-1700000000001"}

	merged := Effective(seedFixture(), overrides, tombstones)

	assert.Len(t, merged, 2)
	for _, project := range merged {
		assert.NotEqual(t, "project-1700000000001", project.ID)
	}
}

/*
TestEffective_SkipsBlankOverrideIDs verifies that an override that decoded
without an id is dropped rather than appended.
*/
func TestEffective_SkipsBlankOverrideIDs(t *testing.T) {
	overrides := []Project{{Title: "이름 없는 프로젝트"}}

	merged := Effective(seedFixture(), overrides, nil)

	assert.Len(t, merged, 2)
}

/*
TestEffective_NeverNil verifies the empty catalogue is an empty slice, not
nil, so the JSON layer emits [] rather than null.
*/
func TestEffective_NeverNil(t *testing.T) {
	merged := Effective(nil, nil, nil)

	assert.NotNil(t, merged)
	assert.Empty(t, merged)
}
