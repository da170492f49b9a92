// Package response records the answers customers give by clicking a score in
// a survey email and reports the resulting Net Promoter Score.
//
// A survey link carries score, customer and email query parameters, plus an
// optional record reference:
//
//	https://nps.example.com/nps?score=9&customer=CUST-1&email=a@b.com
//
// The redirect endpoint answers 400 with an "Invalid Link" page when any
// required parameter is missing and otherwise forwards the link with a 302.
// The record endpoint validates the score (0-10), stores it with its
// category and timestamp, and shows a thank-you page.
//
// Categories follow the usual NPS buckets: Promoter (9-10), Passive (7-8)
// and Detractor (0-6). The score is the percentage of promoters minus the
// percentage of detractors.
package response
