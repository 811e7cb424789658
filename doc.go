// Package scriptura is a tiered scripture retrieval system. Verse search
// and guidance requests flow through locally stored translations first,
// then AI providers in priority order, and finally a built-in thematic
// corpus, so every request gets an answer even fully offline.
//
// The Service type is the composition root:
//
//	svc, err := scriptura.NewService("/var/lib/scriptura")
//	if err != nil { ... }
//	defer svc.Close()
//
//	response, err := svc.Search(ctx, "verses about hope")
package scriptura
