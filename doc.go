// Package cfg reads and writes typed configuration trees.
//
// A [Config] owns one tree of settings: named groups, homogeneous scalar
// arrays, heterogeneous lists, and typed scalar values (int32, int64,
// float64, bool, string). Trees are loaded from cfg text (file or string),
// built programmatically, navigated with dotted paths, and serialized back
// to cfg text.
//
//	c := cfg.New()
//	if err := c.LoadFromFile("app.cfg"); err != nil {
//	    // ...
//	}
//	port := c.Value("server.port").AsInt32Default(8080)
//
// [OptionReader] and [OptionWriter] are transient views into the tree.
// They never own the nodes they refer to: the Config must outlive every
// view derived from it, and a view must not be used after a deletion that
// could affect the node it refers to. A view obtained from a failed
// resolution is unbound; every operation on an unbound view reports
// absence instead of failing.
//
// Probing for optional settings is expected, common and silent: absence
// comes back as an ok=false result (or the default, for the Default
// accessor variants), never as an error. Errors are reserved for
// operational failures: parse errors, missing files, save failures and
// rejected deletes.
//
// Config trees are not safe for concurrent use.
package cfg
