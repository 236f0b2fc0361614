package main

import "github.com/nisakhantalib/booking-system/cmd"

func main() {
	cmd.Execute()
}
