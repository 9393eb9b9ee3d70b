package client

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

// ListNews returns news posts, newest first. published optionally filters:
// "all" includes drafts, "false" returns only drafts, empty means published.
func (c *Client) ListNews(ctx context.Context, published string) ([]Article, error) {
	path := "/api/news"
	if published != "" {
		path += "?published=" + url.QueryEscape(published)
	}
	var out []Article
	err := c.getJSON(ctx, path, &out)
	return out, err
}

// GetArticle returns a single news post by id.
func (c *Client) GetArticle(ctx context.Context, id string) (Article, error) {
	var out Article
	err := c.getJSON(ctx, "/api/news/"+id, &out)
	return out, err
}

// CreateArticle creates a news post. Requires an admin session. A non-nil
// image is sent as multipart form data.
func (c *Client) CreateArticle(ctx context.Context, in ArticleInput, image *Upload) (Article, error) {
	var out Article
	if image == nil {
		err := c.postJSON(ctx, "/api/news", in, &out)
		return out, err
	}
	err := c.multipartRequest(ctx, http.MethodPost, "/api/news", articleFields(in), image, &out)
	return out, err
}

// UpdateArticle applies the non-nil fields of in. Requires an admin session.
func (c *Client) UpdateArticle(ctx context.Context, id string, in ArticleInput, image *Upload) (Article, error) {
	var out Article
	if image == nil {
		err := c.putJSON(ctx, "/api/news/"+id, in, &out)
		return out, err
	}
	err := c.multipartRequest(ctx, http.MethodPut, "/api/news/"+id, articleFields(in), image, &out)
	return out, err
}

// DeleteArticle removes a news post. Requires an admin session.
func (c *Client) DeleteArticle(ctx context.Context, id string) error {
	return c.deleteJSON(ctx, "/api/news/"+id, nil)
}

func articleFields(in ArticleInput) map[string]string {
	fields := map[string]string{}
	if in.Title != nil {
		fields["title"] = *in.Title
	}
	if in.Content != nil {
		fields["content"] = *in.Content
	}
	if in.Author != nil {
		fields["author"] = *in.Author
	}
	if in.Category != nil {
		fields["category"] = *in.Category
	}
	if in.Published != nil {
		fields["published"] = strconv.FormatBool(*in.Published)
	}
	return fields
}

// ListGallery returns media items, newest first.
func (c *Client) ListGallery(ctx context.Context) ([]GalleryItem, error) {
	var out []GalleryItem
	err := c.getJSON(ctx, "/api/gallery", &out)
	return out, err
}

// GetGalleryItem returns a single media item by id.
func (c *Client) GetGalleryItem(ctx context.Context, id string) (GalleryItem, error) {
	var out GalleryItem
	err := c.getJSON(ctx, "/api/gallery/"+id, &out)
	return out, err
}

// CreateGalleryItem uploads a media file. Requires an admin session. The
// item type is derived server-side from the file's MIME type.
func (c *Client) CreateGalleryItem(ctx context.Context, title, description string, media Upload) (GalleryItem, error) {
	fields := map[string]string{"title": title, "description": description}
	var out GalleryItem
	err := c.multipartRequest(ctx, http.MethodPost, "/api/gallery", fields, &media, &out)
	return out, err
}

// UpdateGalleryItem updates metadata and optionally replaces the media file.
// Requires an admin session.
func (c *Client) UpdateGalleryItem(ctx context.Context, id string, title, description *string, media *Upload) (GalleryItem, error) {
	fields := map[string]string{}
	if title != nil {
		fields["title"] = *title
	}
	if description != nil {
		fields["description"] = *description
	}
	var out GalleryItem
	err := c.multipartRequest(ctx, http.MethodPut, "/api/gallery/"+id, fields, media, &out)
	return out, err
}

// DeleteGalleryItem removes a media item. Requires an admin session.
func (c *Client) DeleteGalleryItem(ctx context.Context, id string) error {
	return c.deleteJSON(ctx, "/api/gallery/"+id, nil)
}

// ListSponsors returns sponsors ordered by tier, then name.
func (c *Client) ListSponsors(ctx context.Context) ([]Sponsor, error) {
	var out []Sponsor
	err := c.getJSON(ctx, "/api/sponsors", &out)
	return out, err
}

// GetSponsor returns a single sponsor by id.
func (c *Client) GetSponsor(ctx context.Context, id string) (Sponsor, error) {
	var out Sponsor
	err := c.getJSON(ctx, "/api/sponsors/"+id, &out)
	return out, err
}

// CreateSponsor creates a sponsor with its logo. Requires an admin session.
func (c *Client) CreateSponsor(ctx context.Context, in SponsorInput, logo Upload) (Sponsor, error) {
	var out Sponsor
	err := c.multipartRequest(ctx, http.MethodPost, "/api/sponsors", sponsorFields(in), &logo, &out)
	return out, err
}

// UpdateSponsor applies the non-nil fields of in. Requires an admin session.
func (c *Client) UpdateSponsor(ctx context.Context, id string, in SponsorInput, logo *Upload) (Sponsor, error) {
	var out Sponsor
	if logo == nil {
		err := c.putJSON(ctx, "/api/sponsors/"+id, in, &out)
		return out, err
	}
	err := c.multipartRequest(ctx, http.MethodPut, "/api/sponsors/"+id, sponsorFields(in), logo, &out)
	return out, err
}

// DeleteSponsor removes a sponsor. Requires an admin session.
func (c *Client) DeleteSponsor(ctx context.Context, id string) error {
	return c.deleteJSON(ctx, "/api/sponsors/"+id, nil)
}

func sponsorFields(in SponsorInput) map[string]string {
	fields := map[string]string{}
	if in.Name != nil {
		fields["name"] = *in.Name
	}
	if in.Website != nil {
		fields["website"] = *in.Website
	}
	if in.Tier != nil {
		fields["tier"] = *in.Tier
	}
	if in.Description != nil {
		fields["description"] = *in.Description
	}
	return fields
}
