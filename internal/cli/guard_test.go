package cli

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/shopadmin/internal/models"
)

func TestRequireAuth(t *testing.T) {
	user := &models.User{Email: "a@b.c"}

	require.Equal(t, ScreenOrders, RequireAuth(user, ScreenOrders))
	require.Equal(t, ScreenLogin, RequireAuth(nil, ScreenOrders))
}

func TestRequireAnon(t *testing.T) {
	user := &models.User{Email: "a@b.c"}

	require.Equal(t, ScreenLogin, RequireAnon(nil, ScreenLogin))
	require.Equal(t, ScreenOverview, RequireAnon(user, ScreenLogin))
}

func TestGuardFor_EveryScreenHasExactlyOneGuard(t *testing.T) {
	protected := []Screen{
		ScreenOverview, ScreenUsers, ScreenProducts, ScreenCategory,
		ScreenOrders, ScreenInventory, ScreenReports, ScreenAddresses,
	}
	user := &models.User{Email: "a@b.c"}

	for _, screen := range protected {
		// anonymous visitors bounce to login, never the other way around
		require.Equal(t, ScreenLogin, guardFor(screen)(nil, screen), string(screen))
		require.Equal(t, screen, guardFor(screen)(user, screen), string(screen))
	}

	require.Equal(t, ScreenLogin, guardFor(ScreenLogin)(nil, ScreenLogin))
	require.Equal(t, ScreenOverview, guardFor(ScreenLogin)(user, ScreenLogin))
}
