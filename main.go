package main

import "github.com/wangdayong228/rest-sdk-client/cmd"

func main() {
	cmd.Execute()
}
