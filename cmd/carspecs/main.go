// Package main provides the entry point for the carspecs CLI.
//
// carspecs looks up car facts on carspecs.us: the years and models of a
// make, the years of a model, the models of a year, or the price, mileage,
// and specifications of one car.
//
// Usage:
//
//	carspecs --make honda
//	carspecs --make honda --model civic
//	carspecs --make honda --year 2001
//	carspecs --make honda --model civic --year 2001
//
// See --help for all available options.
package main

func main() {
	Execute()
}
