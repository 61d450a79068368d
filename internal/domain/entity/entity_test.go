package entity

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLevelForPoints(t *testing.T) {
	tests := []struct {
		points int
		want   int
	}{
		{points: -5, want: 1},
		{points: 0, want: 1},
		{points: 99, want: 1},
		{points: 100, want: 2},
		{points: 250, want: 3},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, LevelForPoints(tt.points), "points=%d", tt.points)
	}
}

func TestUser_AddPoints(t *testing.T) {
	user := &User{Points: 95, Level: 1}

	user.AddPoints(10)
	assert.Equal(t, 105, user.Points)
	assert.Equal(t, 2, user.Level)
	assert.Equal(t, 95, user.PointsToNextLevel())

	user.AddPoints(0)
	user.AddPoints(-20)
	assert.Equal(t, 105, user.Points)
}

func TestRewardTemplate_PointsValue(t *testing.T) {
	tests := []struct {
		value  string
		want   int
		wantOK bool
	}{
		{value: "25 puntos", want: 25, wantOK: true},
		{value: "  7", want: 7, wantOK: true},
		{value: "15%", wantOK: false},
		{value: "0 puntos", wantOK: false},
		{value: "-3 puntos", wantOK: false},
		{value: "", wantOK: false},
		{value: "puntos 10", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			got, ok := (&RewardTemplate{Value: tt.value}).PointsValue()
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRewardTemplate_IsExpiredAt(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	past := now.Add(-time.Second)
	future := now.Add(time.Second)

	assert.False(t, (&RewardTemplate{}).IsExpiredAt(now))
	assert.True(t, (&RewardTemplate{ExpiresAt: &past}).IsExpiredAt(now))
	assert.True(t, (&RewardTemplate{ExpiresAt: &now}).IsExpiredAt(now))
	assert.False(t, (&RewardTemplate{ExpiresAt: &future}).IsExpiredAt(now))
}

func TestRewardGrant_Transitions(t *testing.T) {
	now := time.Now().UTC()
	template := &RewardTemplate{ID: uuid.New(), Type: RewardTypeDiscount}

	t.Run("claim once", func(t *testing.T) {
		grant := NewRewardGrant(uuid.New(), template, now)
		require.Equal(t, GrantStateAvailable, grant.State)

		require.NoError(t, grant.Claim(now))
		assert.Equal(t, GrantStateClaimed, grant.State)
		require.NotNil(t, grant.ClaimedAt)

		require.ErrorIs(t, grant.Claim(now), ErrIllegalTransition)
		require.ErrorIs(t, grant.Expire(), ErrIllegalTransition)
	})

	t.Run("expired is terminal", func(t *testing.T) {
		grant := NewRewardGrant(uuid.New(), template, now)

		require.NoError(t, grant.Expire())
		assert.Equal(t, GrantStateExpired, grant.State)
		assert.Nil(t, grant.ClaimedAt)

		require.ErrorIs(t, grant.Claim(now), ErrIllegalTransition)
	})
}

func TestRewardGrant_ShouldExpireAt(t *testing.T) {
	now := time.Now().UTC()
	past := now.Add(-time.Hour)

	grant := NewRewardGrant(uuid.New(), &RewardTemplate{ID: uuid.New(), ExpiresAt: &past}, now)
	assert.True(t, grant.ShouldExpireAt(now))

	require.NoError(t, grant.Claim(now))
	assert.False(t, grant.ShouldExpireAt(now))

	assert.False(t, (&RewardGrant{State: GrantStateAvailable}).ShouldExpireAt(now))
}

func TestNormalizeActivationCode(t *testing.T) {
	assert.Equal(t, "WEEV-AB12CD34", NormalizeActivationCode("  weev-ab12cd34\n"))
}

func TestRoles(t *testing.T) {
	assert.True(t, BrandAdminRoles.Contains(RolePlatformAdmin))
	assert.False(t, BrandAdminRoles.Contains(RoleConsumer))
	assert.False(t, RolePlatformAdmin.SelfRegistrable())
	assert.False(t, Role("owner").IsValid())
	assert.True(t, Principal{}.IsZero())
}
