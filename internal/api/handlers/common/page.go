package common

import (
	"net/http"
	"net/url"
	"strconv"
)

// PageLinks builds the prev and next links for a paginated listing.
// Both keep every other query parameter of r and only replace page.
// A zero page yields a nil link.
func PageLinks(r *http.Request, prevPage, nextPage int) (prev, next *string) {
	return pageLink(r.URL, prevPage), pageLink(r.URL, nextPage)
}

func pageLink(u *url.URL, page int) *string {
	if page == 0 {
		return nil
	}
	q := u.Query()
	q.Set("page", strconv.Itoa(page))
	link := u.Path + "?" + q.Encode()
	return &link
}
