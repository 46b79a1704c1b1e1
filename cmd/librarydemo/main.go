// Command librarydemo runs a walkthrough of the catalog and the loan lifecycle against an in-memory loan ledger.
package main

import "github.com/AntonStoeckl/library-loans-go/cmd/librarydemo/command"

func main() {
	command.Execute()
}
