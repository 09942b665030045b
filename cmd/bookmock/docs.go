package main

// General API documentation for swaggo. Build with -tags=swagger to serve it
// under /swagger/.
//
// @title           bookmock API
// @version         1.0
// @description     Static JSON fixtures for local book-reader front-end development.
//
// @license.name   MIT
// @license.url    https://opensource.org/licenses/MIT
//
// @BasePath  /
//
// @schemes http
