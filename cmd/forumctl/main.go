// forumctl is the operator tool for a coolfrog deployment: it runs migrations,
// inspects topics and seeds the session and user records a login flow would write.
package main

func main() {
	Execute()
}
