// Package posts serves blog posts from the /posts collection.
//
// Posts are cached in the posts table and exposed under /posts through the
// generic CRUD handler. NewPost is the draft a user fills in before it is sent;
// ToPost turns it into a Post with no id, which the server assigns on create.
package posts
