package main

import "github.com/cleitonmarx/symbiont-ai-dogcare/internal/app"

func main() {
	err := app.NewDogCareApp().Run()
	if err != nil {
		panic(err)
	}
}
