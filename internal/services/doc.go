// Package services holds the controllers that sit between the front end
// and the client core: login and logout, catalog reloads and detail
// resolution, and the startup session restore.
//
// Services mutate the state container only through its methods and signal
// screen changes only through a navigation.Navigator. Storage failures are
// logged and swallowed; catalog failures are recorded on the state so the
// front end can offer a retry.
package services
