package browse

import "fmt"

// BuildURL formats https://{host}/{path}/{segment}/{tail}. Nothing is
// escaped: references containing characters such as '#' or '?' produce
// URLs the browser will interpret differently.
func BuildURL(host, path, segment, tail string) string {
	return fmt.Sprintf("https://%s/%s/%s/%s", host, path, segment, tail)
}
