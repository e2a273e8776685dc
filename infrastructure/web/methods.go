package web

func (a *WebHandler) GET(path string, handler HandlerFunc, middleware ...Middleware) {
	a.Handle("GET", path, handler, middleware...)
}

func (a *WebHandler) POST(path string, handler HandlerFunc, middleware ...Middleware) {
	a.Handle("POST", path, handler, middleware...)
}

func (a *WebHandler) PUT(path string, handler HandlerFunc, middleware ...Middleware) {
	a.Handle("PUT", path, handler, middleware...)
}

func (a *WebHandler) DELETE(path string, handler HandlerFunc, middleware ...Middleware) {
	a.Handle("DELETE", path, handler, middleware...)
}

func (g *RouteGroup) GET(path string, handler HandlerFunc, middleware ...Middleware) {
	g.Handle("GET", path, handler, middleware...)
}

func (g *RouteGroup) POST(path string, handler HandlerFunc, middleware ...Middleware) {
	g.Handle("POST", path, handler, middleware...)
}

func (g *RouteGroup) PUT(path string, handler HandlerFunc, middleware ...Middleware) {
	g.Handle("PUT", path, handler, middleware...)
}

func (g *RouteGroup) DELETE(path string, handler HandlerFunc, middleware ...Middleware) {
	g.Handle("DELETE", path, handler, middleware...)
}
