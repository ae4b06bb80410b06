package controller

import (
	"testing"

	"archery/repository"

	"github.com/stretchr/testify/assert"
)

func TestClubResponseRendersDescription(t *testing.T) {
	club := &repository.Club{Id: 3, Name: "Longbow Society", Description: "Meets **every** Sunday\nat <noon>", MaxAge: 99}

	response := toClubResponse(club)

	assert.Equal(t, club.Description, response.Description)
	assert.Contains(t, response.DescriptionHTML, "<strong>every</strong>")
	assert.Contains(t, response.DescriptionHTML, "<br")
	assert.NotContains(t, response.DescriptionHTML, "<noon>", "raw html is not passed through")
	assert.False(t, response.OpenToJoin)
	assert.Equal(t, 99, response.MaxAge)
}
