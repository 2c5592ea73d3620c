package cookie_test

import (
	"bufio"
	"fmt"
	"net/http"
	"strings"

	"github.com/vfaronov/cookie"
)

const request = `GET /account HTTP/1.1
Host: shop.example.com
Cookie: lang=en-US; cart=2%20items

`

func Example() {
	r, _ := http.ReadRequest(bufio.NewReader(strings.NewReader(request)))

	jar := cookie.NewJar()
	for c, err := range cookie.SplitParseEncoded(r.Header.Get("Cookie")) {
		if err == nil {
			jar.AddOriginal(c)
		}
	}

	fmt.Println("user prefers", jar.Get("lang").Value())
	fmt.Println("shopping cart holds", jar.Get("cart").Value())

	jar.Add(cookie.Build("session", "78f2b3").
		Path("/").
		HTTPOnly(true).
		SameSite(cookie.SameSiteLax).
		Cookie())

	for _, c := range jar.Delta() {
		fmt.Println("Set-Cookie:", c)
	}

	// Output: user prefers en-US
	// shopping cart holds 2 items
	// Set-Cookie: session=78f2b3; HttpOnly; SameSite=Lax; Path=/
}
