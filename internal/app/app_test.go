package app

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewDogCareApp_Initializers(t *testing.T) {
	app := NewDogCareApp()
	require.NotNil(t, app, "NewDogCareApp should not return nil")
}
