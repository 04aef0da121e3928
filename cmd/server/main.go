package main

import "sponsorcrm/internal/app"

// @title           SponsorCRM API
// @version         1.0
// @description     Sales pipeline CRM for media sponsorships: leads, sponsor contracts, dashboard stats and AI-assisted document intake.
// @BasePath        /
func main() {
	app.Run()
}
