package scripts

import (
	"Gopher3DPickup/internal/behaviour"
	"Gopher3DPickup/internal/config"
	"Gopher3DPickup/internal/interaction"
)

func init() {
	behaviour.RegisterScript("PickUpScript", func() behaviour.Component {
		return interaction.NewPickUpController(config.DefaultPickUpConfig(), nil, nil, nil)
	})
}
